package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldIMSI       = "imsi"
	FieldCount      = "count"
	FieldFile       = "file"
)

// イベントID
const (
	EventNMSAPIError      = "NMS_API_ERR"
	EventCBOpen           = "CB_OPEN"
	EventCBHalfOpen       = "CB_HALF_OPEN"
	EventCBClose          = "CB_CLOSE"
	EventBulkAddFailed    = "BULK_ADD_FAILED"
	EventBulkAddDone      = "BULK_ADD_DONE"
	EventSubscriberSaved  = "SUBSCRIBER_SAVED"
	EventSubscriberFailed = "SUBSCRIBER_SAVE_FAILED"
	EventCSVParseFailed   = "CSV_PARSE_FAILED"
	EventValkeyError      = "VALKEY_ERR"
)

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithCount は件数のslog.Attrを返す。
func WithCount(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// WithFile はファイル名のslog.Attrを返す。
func WithFile(name string) slog.Attr {
	return slog.String(FieldFile, name)
}

// WithSecret は秘匿値をマスキングしたslog.Attrを返す。
// 設定済みかどうかだけがログから分かる。
func WithSecret(key, value string) slog.Attr {
	return slog.String(key, MaskSecret(value))
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithIMSI はマスキングされたIMSIのslog.Attrを返す。
func (cf *CommonFields) WithIMSI(imsi string) slog.Attr {
	return slog.String(FieldIMSI, cf.masker.IMSI(imsi))
}

// SubscriberLogFields は加入者操作ログ用の共通フィールドを返す。
func (cf *CommonFields) SubscriberLogFields(eventID, imsi string) []any {
	return []any{
		WithEventID(eventID),
		cf.WithIMSI(imsi),
	}
}
