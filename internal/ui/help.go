package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HelpSection はヘルプのセクションを表す。
type HelpSection struct {
	Title    string
	Bindings []KeyBinding
}

// NewHelpModal はヘルプモーダルを生成する。
func NewHelpModal(sections []HelpSection, onClose func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(formatHelp(sections)).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" Help ").
		SetBorder(true).
		SetBorderColor(tcell.ColorTeal)
	return modal
}

func formatHelp(sections []HelpSection) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[::b]" + section.Title + "[::-]\n")
		for _, binding := range section.Bindings {
			b.WriteString("  " + tview.Escape(binding.Label()) + "  " + binding.Description + "\n")
		}
	}
	return b.String()
}

// GetDefaultHelpSections はデフォルトのヘルプセクションを返す。
func GetDefaultHelpSections() []HelpSection {
	return []HelpSection{
		{Title: "Subscriber List", Bindings: GetListKeyBindings()},
		{Title: "Add Subscribers", Bindings: GetAddDialogKeyBindings()},
		{Title: "Edit Subscriber", Bindings: append(GetEditDialogKeyBindings(), GetStaticIPKeyBindings()...)},
		{Title: "APN / Policy Lists", Bindings: GetSelectKeyBindings()},
		{Title: "Global", Bindings: GetGlobalKeyBindings()},
	}
}
