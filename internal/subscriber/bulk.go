package subscriber

import (
	"context"
	"log/slog"

	"github.com/oyaguma3/nms-subscriber-console/internal/validation"
	"github.com/oyaguma3/nms-subscriber-console/pkg/keycodec"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// BulkResult は一括登録の結果を表す。
// Errがnilでない場合、Savedに含まれる加入者は既に永続化されており取り消されない。
type BulkResult struct {
	Saved []string // 永続化に成功した加入者ID（処理順）
	Err   error    // 最初に発生したエラー
}

// taskQueue は登録待ち行を順番に取り出すキュー。
// 停止後は残りの行を返さない。
type taskQueue struct {
	rows   []StagedRow
	halted bool
}

func newTaskQueue(rows []StagedRow) *taskQueue {
	return &taskQueue{rows: append([]StagedRow(nil), rows...)}
}

func (q *taskQueue) next() (StagedRow, bool) {
	if q.halted || len(q.rows) == 0 {
		return StagedRow{}, false
	}
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row, true
}

func (q *taskQueue) halt() {
	q.halted = true
}

func (q *taskQueue) pending() int {
	return len(q.rows)
}

// BulkAdder は登録待ちの加入者を1件ずつ順番に永続化する。
type BulkAdder struct {
	repo     Repository
	auditLog AuditLogger
	fields   *logging.CommonFields
}

// NewBulkAdder は新しいBulkAdderを生成する。
func NewBulkAdder(repo Repository, auditLog AuditLogger, fields *logging.CommonFields) *BulkAdder {
	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}
	return &BulkAdder{
		repo:     repo,
		auditLog: auditLog,
		fields:   fields,
	}
}

// Save は行を先頭から順に検証・永続化する。
// 書き込みは常に1件ずつで、前の書き込みの完了を待ってから次に進む。
// 最初の失敗で停止し、以降の行は処理しない。
// 検証は処理開始時点の既知加入者で行うため、同一バッチ内のIMSI重複は検出しない。
func (a *BulkAdder) Save(ctx context.Context, rows []StagedRow) BulkResult {
	known := a.repo.Known()
	queue := newTaskQueue(rows)

	var result BulkResult
	for row, ok := queue.next(); ok; row, ok = queue.next() {
		if err := a.saveOne(ctx, row.Info, known); err != nil {
			queue.halt()
			result.Err = err
			slog.Error("bulk add halted",
				append(a.fields.SubscriberLogFields(logging.EventBulkAddFailed, row.Info.IMSI),
					logging.WithError(err),
					logging.WithCount(len(result.Saved)),
					slog.Int("pending", queue.pending()),
				)...,
			)
			return result
		}
		result.Saved = append(result.Saved, row.Info.IMSI)
	}

	slog.Info("bulk add completed",
		logging.WithEventID(logging.EventBulkAddDone),
		logging.WithCount(len(result.Saved)),
	)
	return result
}

func (a *BulkAdder) saveOne(ctx context.Context, info *model.SubscriberInfo, known map[string]*model.Subscriber) error {
	if msg := validation.ValidateSubscriberInfo(info, known); msg != "" {
		return &SaveError{ID: info.IMSI, Cause: &ValidationError{Message: msg}}
	}

	payload, err := buildPayload(info)
	if err != nil {
		return &SaveError{ID: info.IMSI, Cause: err}
	}

	if err := a.repo.Write(ctx, info.IMSI, payload); err != nil {
		return &SaveError{ID: info.IMSI, Cause: err}
	}

	if a.auditLog != nil {
		a.auditLog.LogCreate(info.IMSI)
	}
	slog.Info("subscriber created", a.fields.SubscriberLogFields(logging.EventSubscriberSaved, info.IMSI)...)
	return nil
}

// buildPayload は登録待ちの加入者情報から書き込みペイロードを組み立てる。
// 認証アルゴリズムはMILENAGE固定。Auth Key/OPCは空の場合も空文字として送信する。
func buildPayload(info *model.SubscriberInfo) (*model.MutableSubscriber, error) {
	var authKey, authOpc string
	var err error
	if info.AuthKey != "" {
		if authKey, err = keycodec.HexToBase64(info.AuthKey); err != nil {
			return nil, err
		}
	}
	if info.AuthOpc != "" {
		if authOpc, err = keycodec.HexToBase64(info.AuthOpc); err != nil {
			return nil, err
		}
	}

	return &model.MutableSubscriber{
		ID:   info.IMSI,
		Name: info.Name,
		Lte: model.LteSubscription{
			AuthAlgo:   model.AuthAlgoMilenage,
			AuthKey:    authKey,
			AuthOpc:    &authOpc,
			State:      info.State,
			SubProfile: info.DataPlan,
		},
		ActiveAPNs:     append([]string(nil), info.APNs...),
		ActivePolicies: append([]string(nil), info.Policies...),
	}, nil
}
