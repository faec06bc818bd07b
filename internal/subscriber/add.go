package subscriber

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/oyaguma3/nms-subscriber-console/internal/csv"
	"github.com/oyaguma3/nms-subscriber-console/internal/store"
	"github.com/oyaguma3/nms-subscriber-console/internal/validation"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// AddSession は一括登録ダイアログの状態を保持する。
type AddSession struct {
	repo     Repository
	notifier Notifier
	adder    *BulkAdder
	auditLog AuditLogger
	onClose  func()

	rows []StagedRow
	err  string
}

// NewAddSession は新しいAddSessionを生成する。
// onCloseは一括登録がすべて成功した場合に呼ばれる。
func NewAddSession(repo Repository, notifier Notifier, adder *BulkAdder, auditLog AuditLogger, onClose func()) *AddSession {
	return &AddSession{
		repo:     repo,
		notifier: notifier,
		adder:    adder,
		auditLog: auditLog,
		onClose:  onClose,
	}
}

// Rows は登録待ちの行を返す。
func (s *AddSession) Rows() []StagedRow {
	return slices.Clone(s.rows)
}

// Error は直近のエラーメッセージを返す。エラーが無い場合は空文字。
func (s *AddSession) Error() string {
	return s.err
}

// Upload はCSVファイルを読み込み、登録待ちの行として末尾に追加する。
// 既存の行との重複は除去しない。
// 読み込みに失敗した場合はエラー通知を行い、行は追加しない。
func (s *AddSession) Upload(f *csv.File) error {
	infos, err := csv.ParseSubscriberFile(f)
	if err != nil {
		slog.Warn("csv parse failed",
			logging.WithEventID(logging.EventCSVParseFailed),
			logging.WithFile(f.Name),
			logging.WithError(err),
		)
		s.notifier.Notify(err.Error(), VariantError)
		return err
	}

	for _, info := range infos {
		s.rows = append(s.rows, StagedRow{ID: uuid.NewString(), Info: info})
	}
	if s.auditLog != nil {
		s.auditLog.LogImport(f.Name, len(infos))
	}
	return nil
}

// AddRow は手入力した加入者を検証し、登録待ちの行として追加する。
// 戻り値は生成した行ID。
func (s *AddSession) AddRow(info *model.SubscriberInfo) (string, error) {
	info = withDefaults(info)
	if err := s.validate(info); err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.rows = append(s.rows, StagedRow{ID: id, Info: info})
	return id, nil
}

// UpdateRow は登録待ちの行を検証したうえで置き換える。
func (s *AddSession) UpdateRow(id string, info *model.SubscriberInfo) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrRowNotFound
	}

	info = withDefaults(info)
	if err := s.validate(info); err != nil {
		return err
	}
	s.rows[idx].Info = info
	return nil
}

// DeleteRow は登録待ちの行を削除する。
func (s *AddSession) DeleteRow(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrRowNotFound
	}
	s.rows = slices.Delete(s.rows, idx, idx+1)
	return nil
}

// Save は登録待ちの行を一括登録する。
// すべて成功した場合はダイアログを閉じる。失敗した場合はエラーを保持し、行はそのまま残す。
func (s *AddSession) Save(ctx context.Context) BulkResult {
	result := s.adder.Save(ctx, s.rows)
	if result.Err != nil {
		s.err = result.Err.Error()
		return result
	}

	s.err = ""
	if s.onClose != nil {
		s.onClose()
	}
	return result
}

func (s *AddSession) validate(info *model.SubscriberInfo) error {
	s.err = validation.ValidateSubscriberInfo(info, s.repo.Known())
	if s.err != "" {
		return &ValidationError{Message: s.err}
	}
	return nil
}

func (s *AddSession) indexOf(id string) int {
	return slices.IndexFunc(s.rows, func(r StagedRow) bool { return r.ID == id })
}

// withDefaults は選択されていないサービス状態とデータプランに初期値を補う。
func withDefaults(info *model.SubscriberInfo) *model.SubscriberInfo {
	c := *info
	if c.State == "" {
		c.State = model.StateActive
	}
	if c.DataPlan == "" {
		c.DataPlan = store.DefaultName
	}
	return &c
}
