package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ConfirmDialog は確認ダイアログを表示する。
type ConfirmDialog struct {
	modal *tview.Modal
}

// NewConfirmDialog は新しいConfirmDialogを生成する。
func NewConfirmDialog(title, message string, onConfirm, onCancel func()) *ConfirmDialog {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Yes" {
				if onConfirm != nil {
					onConfirm()
				}
			} else if onCancel != nil {
				onCancel()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorWhite)

	return &ConfirmDialog{modal: modal}
}

// GetModal は内部のtview.Modalを返す。
func (d *ConfirmDialog) GetModal() *tview.Modal {
	return d.modal
}

// ErrorDialog はエラーダイアログを表示する。
type ErrorDialog struct {
	modal *tview.Modal
}

// NewErrorDialog は新しいErrorDialogを生成する。
func NewErrorDialog(title, message string, onClose func()) *ErrorDialog {
	modal := tview.NewModal().
		SetText("✗ ERROR\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)

	return &ErrorDialog{modal: modal}
}

// GetModal は内部のtview.Modalを返す。
func (d *ErrorDialog) GetModal() *tview.Modal {
	return d.modal
}

// InputDialog は1行入力ダイアログを表示する。
type InputDialog struct {
	form  *tview.Form
	input *tview.InputField
}

// NewInputDialog は新しいInputDialogを生成する。
// Escキーはキャンセルとして扱う。
func NewInputDialog(title, label, defaultValue string, fieldWidth int, onSubmit func(value string), onCancel func()) *InputDialog {
	form := tview.NewForm()
	input := tview.NewInputField().
		SetLabel(label).
		SetText(defaultValue).
		SetFieldWidth(fieldWidth)

	form.AddFormItem(input)
	form.AddButton("OK", func() {
		if onSubmit != nil {
			onSubmit(input.GetText())
		}
	})
	form.AddButton("Cancel", func() {
		if onCancel != nil {
			onCancel()
		}
	})
	form.SetCancelFunc(func() {
		if onCancel != nil {
			onCancel()
		}
	})

	form.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorWhite)

	return &InputDialog{form: form, input: input}
}

// GetForm は内部のtview.Formを返す。
func (d *InputDialog) GetForm() *tview.Form {
	return d.form
}
