package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// キーバインド定義
var (
	KeyUp       = tcell.KeyUp
	KeyDown     = tcell.KeyDown
	KeyPageUp   = tcell.KeyPgUp
	KeyPageDown = tcell.KeyPgDn
	KeyTab      = tcell.KeyTab
	KeyBacktab  = tcell.KeyBacktab
	KeyEnter    = tcell.KeyEnter
	KeyEscape   = tcell.KeyEsc

	KeyHelp    = tcell.KeyF1
	KeyAdd     = tcell.KeyF2
	KeyEdit    = tcell.KeyF3
	KeyRefresh = tcell.KeyF5
	KeySave    = tcell.KeyCtrlS
	KeyLists   = tcell.KeyF6
	KeyQuit    = tcell.KeyCtrlQ

	// 編集ダイアログのタブ切り替え
	KeyTabSubscriber    = tcell.KeyF2
	KeyTabTrafficPolicy = tcell.KeyF3
	KeyTabStaticIPs     = tcell.KeyF4
)

// Rune keys
const (
	RuneAdd           = 'a'
	RuneEdit          = 'e'
	RuneEditPolicy    = 'p'
	RuneEditStaticIPs = 's'
	RuneExport        = 'x'
	RuneRefresh       = 'r'
	RuneFilter        = '/'
	RuneHelp          = '?'
	RuneQuit          = 'q'
	RuneNewRow        = 'n'
	RuneDeleteRow     = 'd'
	RuneUpload        = 'u'
	RuneToggle        = ' '
)

// KeyBinding はキーバインドの情報を表す。
type KeyBinding struct {
	Key         tcell.Key
	Rune        rune
	Description string
}

// Label はキーの表示名を返す。
func (b KeyBinding) Label() string {
	if b.Key != 0 {
		return keyToString(b.Key)
	}
	if b.Rune == RuneToggle {
		return "Space"
	}
	return string(b.Rune)
}

// GetGlobalKeyBindings はグローバルキーバインドのリストを返す。
func GetGlobalKeyBindings() []KeyBinding {
	return []KeyBinding{
		{KeyHelp, 0, "Help"},
		{0, RuneQuit, "Back/Quit"},
		{KeyQuit, 0, "Exit"},
	}
}

// GetListKeyBindings は加入者一覧画面のキーバインドのリストを返す。
func GetListKeyBindings() []KeyBinding {
	return []KeyBinding{
		{0, RuneAdd, "Add subscribers"},
		{0, RuneEdit, "Edit subscriber"},
		{0, RuneEditPolicy, "Edit traffic policy"},
		{0, RuneEditStaticIPs, "Edit static IPs"},
		{0, RuneExport, "Export"},
		{0, RuneRefresh, "Refresh"},
		{0, RuneFilter, "Filter"},
		{KeyPageUp, 0, "Previous page"},
		{KeyPageDown, 0, "Next page"},
	}
}

// GetAddDialogKeyBindings は一括登録ダイアログのキーバインドのリストを返す。
func GetAddDialogKeyBindings() []KeyBinding {
	return []KeyBinding{
		{0, RuneUpload, "Upload CSV"},
		{0, RuneNewRow, "Add row"},
		{KeyEnter, 0, "Edit row"},
		{0, RuneDeleteRow, "Delete row"},
		{KeySave, 0, "Save"},
		{KeyEscape, 0, "Close"},
	}
}

// GetEditDialogKeyBindings は編集ダイアログのキーバインドのリストを返す。
func GetEditDialogKeyBindings() []KeyBinding {
	return []KeyBinding{
		{KeyTabSubscriber, 0, "Subscriber"},
		{KeyTabTrafficPolicy, 0, "Traffic Policy"},
		{KeyTabStaticIPs, 0, "Static IPs"},
		{KeySave, 0, "Save"},
		{KeyEscape, 0, "Close"},
	}
}

// GetStaticIPKeyBindings は静的IPタブのキーバインドのリストを返す。
func GetStaticIPKeyBindings() []KeyBinding {
	return []KeyBinding{
		{0, RuneNewRow, "Add row"},
		{KeyEnter, 0, "Edit row"},
		{0, RuneDeleteRow, "Delete row"},
	}
}

// GetSelectKeyBindings は複数選択リストのキーバインドのリストを返す。
func GetSelectKeyBindings() []KeyBinding {
	return []KeyBinding{
		{KeyLists, 0, "Select lists"},
		{0, RuneToggle, "Toggle"},
		{KeyTab, 0, "Next list"},
		{KeyEscape, 0, "Back/Cancel"},
	}
}

// FormatKeyBindingHint はキーバインドのヒント文字列を生成する。
func FormatKeyBindingHint(bindings []KeyBinding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, b.Label()+":"+b.Description)
	}
	return strings.Join(hints, " | ")
}

// keyToString はキーコードを文字列に変換する。
func keyToString(key tcell.Key) string {
	switch key {
	case tcell.KeyF1:
		return "F1"
	case tcell.KeyF2:
		return "F2"
	case tcell.KeyF3:
		return "F3"
	case tcell.KeyF4:
		return "F4"
	case tcell.KeyF5:
		return "F5"
	case tcell.KeyF6:
		return "F6"
	case tcell.KeyUp:
		return "↑"
	case tcell.KeyDown:
		return "↓"
	case tcell.KeyPgUp:
		return "PgUp"
	case tcell.KeyPgDn:
		return "PgDn"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBacktab:
		return "Shift+Tab"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEsc:
		return "Esc"
	case tcell.KeyCtrlS:
		return "Ctrl+S"
	case tcell.KeyCtrlQ:
		return "Ctrl+Q"
	default:
		return "?"
	}
}
