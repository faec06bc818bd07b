package subscriber

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/oyaguma3/nms-subscriber-console/internal/validation"
	"github.com/oyaguma3/nms-subscriber-console/pkg/keycodec"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// EditSession は加入者1件の編集状態を保持する。
// 加入者情報・トラフィックポリシー・静的IPの3区分の変更を1回の更新で保存する。
type EditSession struct {
	repo     Repository
	notifier Notifier
	auditLog AuditLogger
	fields   *logging.CommonFields
	onClose  func()

	sub       *model.Subscriber // 作業用コピー
	authKey   string            // 表示用Hex
	authOpc   string            // 表示用Hex
	staticIPs []model.StaticIPRow
	table     EditTable
	err       string
}

// LoadEditSession は加入者を読み込んで編集セッションを開始する。
// Auth Keyは値が空なら空文字、Auth OPCは未設定（nil）なら空文字として表示する。
// 静的IPは読み込み時に一度だけ行へ展開し、以降は行IDで操作する。
func LoadEditSession(ctx context.Context, repo Repository, notifier Notifier, auditLog AuditLogger,
	fields *logging.CommonFields, id string, table EditTable, onClose func()) (*EditSession, error) {
	sub, err := repo.Read(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read subscriber %s: %w", id, err)
	}

	var authKey, authOpc string
	if sub.Lte.AuthKey != "" {
		if authKey, err = keycodec.Base64ToHex(sub.Lte.AuthKey); err != nil {
			return nil, fmt.Errorf("failed to decode auth_key of %s: %w", id, err)
		}
	}
	if sub.Lte.AuthOpc != nil {
		if authOpc, err = keycodec.Base64ToHex(*sub.Lte.AuthOpc); err != nil {
			return nil, fmt.Errorf("failed to decode auth_opc of %s: %w", id, err)
		}
	}

	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}

	return &EditSession{
		repo:      repo,
		notifier:  notifier,
		auditLog:  auditLog,
		fields:    fields,
		onClose:   onClose,
		sub:       sub.Clone(),
		authKey:   authKey,
		authOpc:   authOpc,
		staticIPs: staticIPRows(sub.ConfigStaticIPs()),
		table:     table,
	}, nil
}

// staticIPRows はAPN→静的IPのマッピングをAPN名順の行に展開する。
func staticIPRows(ips map[string]string) []model.StaticIPRow {
	rows := make([]model.StaticIPRow, 0, len(ips))
	for _, apn := range slices.Sorted(maps.Keys(ips)) {
		rows = append(rows, model.StaticIPRow{ID: uuid.NewString(), APNName: apn, StaticIP: ips[apn]})
	}
	return rows
}

// Subscriber は作業用コピーの複製を返す。
func (s *EditSession) Subscriber() *model.Subscriber {
	return s.sub.Clone()
}

// AuthKey は表示用のAuth Key（Hex）を返す。
func (s *EditSession) AuthKey() string { return s.authKey }

// AuthOpc は表示用のAuth OPC（Hex）を返す。
func (s *EditSession) AuthOpc() string { return s.authOpc }

// StaticIPs は静的IPの行を返す。
func (s *EditSession) StaticIPs() []model.StaticIPRow {
	return slices.Clone(s.staticIPs)
}

// Table は表示中のタブを返す。
func (s *EditSession) Table() EditTable { return s.table }

// SetTable は表示中のタブを切り替える。
func (s *EditSession) SetTable(t EditTable) { s.table = t }

// Error は直近のエラーメッセージを返す。
func (s *EditSession) Error() string { return s.err }

func (s *EditSession) SetName(name string) { s.sub.Name = name }

func (s *EditSession) SetState(state model.SubscriberState) { s.sub.Lte.State = state }

func (s *EditSession) SetSubProfile(profile string) { s.sub.Lte.SubProfile = profile }

// SetAuthKey は表示用のAuth Key（Hex）を設定する。検証は保存時に行う。
func (s *EditSession) SetAuthKey(hex string) { s.authKey = hex }

// SetAuthOpc は表示用のAuth OPC（Hex）を設定する。検証は保存時に行う。
func (s *EditSession) SetAuthOpc(hex string) { s.authOpc = hex }

func (s *EditSession) SetActiveAPNs(apns []string) {
	s.sub.ActiveAPNs = slices.Clone(apns)
}

func (s *EditSession) SetActivePolicies(policies []string) {
	s.sub.ActivePolicies = slices.Clone(policies)
}

// AddStaticIP は空の静的IP行を末尾に追加し、その行IDを返す。
func (s *EditSession) AddStaticIP() string {
	id := uuid.NewString()
	s.staticIPs = append(s.staticIPs, model.StaticIPRow{ID: id})
	return id
}

// UpdateStaticIP は静的IP行のAPN名とIPを更新する。
func (s *EditSession) UpdateStaticIP(id, apnName, staticIP string) error {
	idx := s.indexOfStaticIP(id)
	if idx < 0 {
		return ErrRowNotFound
	}
	s.staticIPs[idx].APNName = apnName
	s.staticIPs[idx].StaticIP = staticIP
	return nil
}

// DeleteStaticIP は静的IP行を削除する。
func (s *EditSession) DeleteStaticIP(id string) error {
	idx := s.indexOfStaticIP(id)
	if idx < 0 {
		return ErrRowNotFound
	}
	s.staticIPs = slices.Delete(s.staticIPs, idx, idx+1)
	return nil
}

func (s *EditSession) indexOfStaticIP(id string) int {
	return slices.IndexFunc(s.staticIPs, func(r model.StaticIPRow) bool { return r.ID == id })
}

// Save は変更内容を1回の更新として保存する。
// Auth OPC、Auth Keyの順に検証し、空でない値はBase64に変換して作業用コピーへ反映する。
// 空の場合は保存済みの値をそのまま送信する。
func (s *EditSession) Save(ctx context.Context) error {
	if msg := validation.ValidateOptionalHex(s.authOpc, validation.MsgEditAuthOpcInvalid); msg != "" {
		s.err = msg
		return &ValidationError{Message: msg}
	}
	if s.authOpc != "" {
		opc, err := keycodec.HexToBase64(s.authOpc)
		if err != nil {
			return s.fail(err)
		}
		s.sub.Lte.AuthOpc = &opc
	}

	if msg := validation.ValidateOptionalHex(s.authKey, validation.MsgEditAuthKeyInvalid); msg != "" {
		s.err = msg
		return &ValidationError{Message: msg}
	}
	if s.authKey != "" {
		key, err := keycodec.HexToBase64(s.authKey)
		if err != nil {
			return s.fail(err)
		}
		s.sub.Lte.AuthKey = key
	}

	payload := s.sub.Mutable()
	payload.StaticIPs = flattenStaticIPs(s.staticIPs)
	slog.Debug("subscriber update payload",
		append(s.fields.SubscriberLogFields(logging.EventSubscriberSaved, s.sub.ID),
			logging.WithSecret("auth_key", s.authKey),
			logging.WithSecret("auth_opc", s.authOpc),
			slog.Int("static_ips", len(payload.StaticIPs)),
		)...,
	)

	if err := s.repo.Write(ctx, s.sub.ID, payload); err != nil {
		return s.fail(err)
	}

	s.err = ""
	if s.auditLog != nil {
		s.auditLog.LogUpdate(s.sub.ID)
	}
	slog.Info("subscriber updated", s.fields.SubscriberLogFields(logging.EventSubscriberSaved, s.sub.ID)...)
	s.notifier.Notify(MsgSavedSuccessfully, VariantSuccess)
	if s.onClose != nil {
		s.onClose()
	}
	return nil
}

func (s *EditSession) fail(err error) error {
	saveErr := &SaveError{ID: s.sub.ID, Cause: err}
	s.err = saveErr.Error()
	slog.Error("subscriber update failed",
		append(s.fields.SubscriberLogFields(logging.EventSubscriberFailed, s.sub.ID), logging.WithError(err))...,
	)
	return saveErr
}

// flattenStaticIPs は静的IP行をAPN→IPのマッピングに戻す。
// 同じAPN名の行が複数ある場合は後の行が優先される。
func flattenStaticIPs(rows []model.StaticIPRow) map[string]string {
	ips := make(map[string]string, len(rows))
	for _, row := range rows {
		ips[row.APNName] = row.StaticIP
	}
	return ips
}
