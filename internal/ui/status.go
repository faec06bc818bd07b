package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/rivo/tview"
)

// DefaultStatusDuration はステータスメッセージの表示時間
const DefaultStatusDuration = 5 * time.Second

// StatusType はステータスメッセージの種類を表す。
type StatusType int

const (
	// StatusInfo は情報メッセージ
	StatusInfo StatusType = iota
	// StatusSuccess は成功メッセージ
	StatusSuccess
	// StatusError はエラーメッセージ
	StatusError
)

var _ subscriber.Notifier = (*StatusBar)(nil)

// StatusBar はステータスバーを管理する。
// 加入者ワークフローからの通知先としても使用する。
type StatusBar struct {
	view        *tview.TextView
	app         *tview.Application
	mu          sync.Mutex
	clearTimer  *time.Timer
	defaultText string
}

// NewStatusBar は新しいStatusBarを生成する。
func NewStatusBar() *StatusBar {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	view.SetBackgroundColor(tcell.ColorDarkBlue)
	view.SetTextColor(tcell.ColorWhite)

	s := &StatusBar{
		view:        view,
		defaultText: " " + FormatKeyBindingHint(GetGlobalKeyBindings()),
	}
	s.ShowDefault()
	return s
}

// SetApp はtview.Applicationへの参照を設定する。
func (s *StatusBar) SetApp(app *tview.Application) {
	s.app = app
}

// ShowDefault はデフォルトのステータスメッセージを表示する。
func (s *StatusBar) ShowDefault() {
	s.view.SetText(s.defaultText)
}

// Show はステータスメッセージを表示する。
func (s *StatusBar) Show(statusType StatusType, message string) {
	s.ShowWithDuration(statusType, message, DefaultStatusDuration)
}

// ShowWithDuration は指定された時間後にデフォルトに戻るステータスメッセージを表示する。
// durationが0以下の場合は自動的に消えない。
func (s *StatusBar) ShowWithDuration(statusType StatusType, message string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}

	s.view.SetText(formatStatus(statusType, message))

	if duration > 0 {
		s.clearTimer = time.AfterFunc(duration, func() {
			if s.app != nil {
				s.app.QueueUpdateDraw(s.ShowDefault)
			}
		})
	}
}

// formatStatus は種類に応じた色付きメッセージを生成する。
// メッセージ中の角括弧はタグとして解釈されないようエスケープする。
func formatStatus(statusType StatusType, message string) string {
	message = tview.Escape(message)
	switch statusType {
	case StatusSuccess:
		return "[green::b] ✓ " + message + " [-::-]"
	case StatusError:
		return "[red::b] ✗ " + message + " [-::-]"
	default:
		return "[cyan] ℹ " + message + " [-]"
	}
}

// ShowInfo は情報メッセージを表示する。
func (s *StatusBar) ShowInfo(message string) {
	s.Show(StatusInfo, message)
}

// ShowSuccess は成功メッセージを表示する。
func (s *StatusBar) ShowSuccess(message string) {
	s.Show(StatusSuccess, message)
}

// ShowError はエラーメッセージを表示する。
func (s *StatusBar) ShowError(message string) {
	s.Show(StatusError, message)
}

// Notify は通知の種別に応じてメッセージを表示する。
func (s *StatusBar) Notify(message string, variant subscriber.Variant) {
	if variant == subscriber.VariantError {
		s.ShowError(message)
		return
	}
	s.ShowSuccess(message)
}

// Text は表示中のテキストを色タグを除いて返す。
func (s *StatusBar) Text() string {
	return s.view.GetText(true)
}
