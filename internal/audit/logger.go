// Package audit は監査ログ機能を提供する。
package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oyaguma3/nms-subscriber-console/internal/store"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
)

// AppName は監査ログに記録するアプリケーション名
const AppName = "subscriber-console"

// EventAuditLog は監査ログのイベントID
const EventAuditLog = "AUDIT_LOG"

// Operation は監査ログの操作種別を表す。
type Operation string

const (
	// OpCreate は作成操作
	OpCreate Operation = "create"
	// OpUpdate は更新操作
	OpUpdate Operation = "update"
	// OpImport はインポート操作
	OpImport Operation = "import"
	// OpExport はエクスポート操作
	OpExport Operation = "export"
)

// TargetSubscriber は監査ログの対象種別（加入者）
const TargetSubscriber = "subscriber"

// Entry は監査ログエントリを表す。
type Entry struct {
	Time       string    `json:"time"`                  // RFC3339形式のタイムスタンプ
	Level      string    `json:"level"`                 // ログレベル（常に"INFO"）
	App        string    `json:"app"`                   // アプリケーション名
	EventID    string    `json:"event_id"`              // イベントID（常に"AUDIT_LOG"）
	Msg        string    `json:"msg"`                   // メッセージ
	Operation  Operation `json:"operation"`             // 操作種別
	TargetType string    `json:"target_type"`           // 対象種別
	TargetKey  string    `json:"target_key"`            // 対象キー
	TargetIMSI string    `json:"target_imsi,omitempty"` // 対象IMSI（マスキング設定に従う）
	AdminUser  string    `json:"admin_user"`            // 管理者ユーザー
	Details    string    `json:"details,omitempty"`     // 追加詳細情報
}

// Logger は監査ログを出力する。
type Logger struct {
	writer    io.Writer
	adminUser string
	masker    *logging.Masker
	mu        sync.Mutex
}

// NewLogger は指定されたWriterを使用するLoggerを生成する。
func NewLogger(writer io.Writer, adminUser string, masker *logging.Masker) *Logger {
	if masker == nil {
		masker = logging.NewMasker(false)
	}
	return &Logger{
		writer:    writer,
		adminUser: adminUser,
		masker:    masker,
	}
}

// Log は監査ログエントリを出力する。
func (l *Logger) Log(op Operation, targetKey, imsi, msg, details string) {
	entry := Entry{
		Time:       time.Now().UTC().Format(time.RFC3339),
		Level:      "INFO",
		App:        AppName,
		EventID:    EventAuditLog,
		Msg:        msg,
		Operation:  op,
		TargetType: TargetSubscriber,
		TargetKey:  targetKey,
		AdminUser:  l.adminUser,
		Details:    details,
	}
	if imsi != "" {
		entry.TargetIMSI = l.masker.IMSI(imsi)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write(append(data, '\n'))
}

// LogCreate は加入者作成のログを出力する。
func (l *Logger) LogCreate(imsi string) {
	l.Log(OpCreate, l.key(imsi), imsi, "subscriber created", "")
}

// LogUpdate は加入者更新のログを出力する。
func (l *Logger) LogUpdate(imsi string) {
	l.Log(OpUpdate, l.key(imsi), imsi, "subscriber updated", "")
}

// LogImport はCSVインポートのログを出力する。
func (l *Logger) LogImport(filename string, count int) {
	l.Log(OpImport, filename, "", "subscriber imported", fmt.Sprintf("count=%d", count))
}

// LogExport はCSVエクスポートのログを出力する。
func (l *Logger) LogExport(filename string, count int) {
	l.Log(OpExport, filename, "", "subscriber exported", fmt.Sprintf("count=%d", count))
}

// key は対象キーを生成する。キーにもIMSIが含まれるためマスキングする。
func (l *Logger) key(imsi string) string {
	return store.SubscriberKey(l.masker.IMSI(imsi))
}
