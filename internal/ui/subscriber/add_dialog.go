package subscriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/csv"
	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

// ページ名
const (
	pageAddDialog = "add-dialog"
	pageRowForm   = "staged-row-form"
	pageUpload    = "upload-dialog"
	pageConfirm   = "confirm-dialog"
)

var stagedHeaders = []string{"IMSI", "Name", "Auth Key", "Auth OPC", "Service", "Data Plan", "APNs", "Policies"}

// AddDialog は加入者の一括登録ダイアログを表す。
// CSVアップロードと手入力で登録待ちの行を作り、まとめて保存する。
type AddDialog struct {
	app     *ui.App
	session *subscriber.AddSession
	choices *Choices
	table   *tview.Table
	errView *tview.TextView
	layout  *tview.Flex
	onClose func(saved int)
	saving  bool
	done    bool
	closed  bool
}

// NewAddDialog は新しいAddDialogを生成する。
// onCloseは保存に成功した場合と、利用者が閉じた場合に呼ばれる。savedは登録件数。
func NewAddDialog(app *ui.App, repo subscriber.Repository, adder *subscriber.BulkAdder,
	auditLog subscriber.AuditLogger, choices *Choices, onClose func(saved int)) *AddDialog {
	d := &AddDialog{
		app:     app,
		choices: choices,
		onClose: onClose,
	}

	// 保存はバックグラウンドで行うため、ここでは閉じる要求だけを記録する
	d.session = subscriber.NewAddSession(repo, app.GetStatusBar(), adder, auditLog, func() {
		d.done = true
	})

	d.table = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	d.errView = tview.NewTextView().SetDynamicColors(true)

	hint := tview.NewTextView().
		SetText(ui.FormatKeyBindingHint(ui.GetAddDialogKeyBindings())).
		SetTextColor(tcell.ColorGray)

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.table, 0, 1, true).
		AddItem(d.errView, 2, 0, false).
		AddItem(hint, 1, 0, false)
	d.layout.SetBorder(true).
		SetTitle(" Add Subscribers ").
		SetBorderColor(tcell.ColorBlue)

	d.setupKeyBindings()
	d.render()
	return d
}

// Show はダイアログを表示する。
func (d *AddDialog) Show() {
	d.app.ShowModal(pageAddDialog, d.layout, d.table)
}

// Session は内部のAddSessionを返す。
func (d *AddDialog) Session() *subscriber.AddSession {
	return d.session
}

func (d *AddDialog) close(saved int) {
	if d.closed {
		return
	}
	d.closed = true
	d.app.RemovePage(pageAddDialog)
	if d.onClose != nil {
		d.onClose(saved)
	}
}

func (d *AddDialog) render() {
	d.table.Clear()
	for col, header := range stagedHeaders {
		d.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, row := range d.session.Rows() {
		for col, value := range stagedRowCells(row.Info) {
			d.table.SetCell(i+1, col, tview.NewTableCell(tview.Escape(value)).
				SetReference(row.ID).
				SetExpansion(1))
		}
	}

	rows := d.table.GetRowCount() - 1
	d.layout.SetTitle(fmt.Sprintf(" Add Subscribers (%d staged) ", rows))
	if rows > 0 {
		if r, _ := d.table.GetSelection(); r < 1 || r > rows {
			d.table.Select(1, 0)
		}
	}

	if msg := d.session.Error(); msg != "" {
		d.errView.SetText("[red]" + tview.Escape(msg) + "[-]")
	} else {
		d.errView.SetText("")
	}
}

// stagedRowCells は登録待ちの行の表示値を返す。
func stagedRowCells(info *model.SubscriberInfo) []string {
	return []string{
		info.IMSI,
		info.Name,
		info.AuthKey,
		info.AuthOpc,
		string(info.State),
		info.DataPlan,
		strings.Join(info.APNs, ","),
		strings.Join(info.Policies, ","),
	}
}

// selectedRowID は選択中の行IDを返す。
func (d *AddDialog) selectedRowID() string {
	row, _ := d.table.GetSelection()
	if row < 1 {
		return ""
	}
	cell := d.table.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	id, _ := cell.GetReference().(string)
	return id
}

func (d *AddDialog) rowInfo(id string) *model.SubscriberInfo {
	for _, row := range d.session.Rows() {
		if row.ID == id {
			return row.Info
		}
	}
	return nil
}

func (d *AddDialog) setupKeyBindings() {
	d.layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.saving {
			if event.Key() == tcell.KeyEsc {
				d.close(0)
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyEsc:
			d.close(0)
			return nil
		case ui.KeySave:
			d.save()
			return nil
		case tcell.KeyEnter:
			if id := d.selectedRowID(); id != "" {
				d.showRowForm(id)
			}
			return nil
		}

		switch event.Rune() {
		case ui.RuneUpload:
			d.showUploadDialog()
			return nil
		case ui.RuneNewRow:
			d.showRowForm("")
			return nil
		case ui.RuneDeleteRow:
			if id := d.selectedRowID(); id != "" {
				d.confirmDelete(id)
			}
			return nil
		}
		return event
	})
}

// showRowForm は行の追加・編集フォームを表示する。idが空の場合は追加。
func (d *AddDialog) showRowForm(id string) {
	title := "Add Subscriber"
	var info *model.SubscriberInfo
	if id != "" {
		title = "Edit Subscriber"
		info = d.rowInfo(id)
	}

	var form *RowForm
	form = NewRowForm(d.app, title, d.choices, info,
		func(info *model.SubscriberInfo) {
			var err error
			if id == "" {
				_, err = d.session.AddRow(info)
			} else {
				err = d.session.UpdateRow(id, info)
			}
			if err != nil {
				form.ShowError(subscriber.ErrorMessage(err))
				return
			}
			d.app.CloseModal(pageRowForm, d.table)
			d.render()
		},
		func() {
			d.app.CloseModal(pageRowForm, d.table)
		},
	)
	d.app.ShowModal(pageRowForm, ui.Centered(form.GetLayout(), 100, 20), form.GetForm())
}

func (d *AddDialog) showUploadDialog() {
	dialog := ui.NewInputDialog("Upload CSV", "File path:", "", 50,
		func(path string) {
			d.app.CloseModal(pageUpload, d.table)
			d.upload(strings.TrimSpace(path))
		},
		func() {
			d.app.CloseModal(pageUpload, d.table)
		},
	)
	d.app.ShowModal(pageUpload, ui.Centered(dialog.GetForm(), 70, 7), dialog.GetForm())
}

// upload はファイルを読み込み、登録待ちの行に加える。
// 失敗時の通知はセッションが行う。
func (d *AddDialog) upload(path string) {
	f, closeFile, err := csv.OpenSubscriberFile(path)
	if err != nil {
		d.app.GetStatusBar().Notify(err.Error(), subscriber.VariantError)
		return
	}
	defer func() { _ = closeFile() }()

	before := len(d.session.Rows())
	if err := d.session.Upload(f); err != nil {
		return
	}
	d.render()
	d.app.GetStatusBar().ShowInfo(fmt.Sprintf("Loaded %d rows from %s", len(d.session.Rows())-before, f.Name))
}

func (d *AddDialog) confirmDelete(id string) {
	info := d.rowInfo(id)
	if info == nil {
		return
	}
	dialog := ui.NewConfirmDialog("Delete Row", "Remove "+info.IMSI+" from the list?",
		func() {
			_ = d.session.DeleteRow(id)
			d.app.CloseModal(pageConfirm, d.table)
			d.render()
		},
		func() {
			d.app.CloseModal(pageConfirm, d.table)
		},
	)
	d.app.ShowModal(pageConfirm, dialog.GetModal(), nil)
}

// save は登録待ちの行をバックグラウンドで一括登録する。
// 保存中はダイアログへの入力を受け付けない。閉じても登録処理は中断しない。
func (d *AddDialog) save() {
	if len(d.session.Rows()) == 0 {
		d.app.GetStatusBar().ShowInfo("No subscribers to add")
		return
	}

	d.saving = true
	d.done = false
	d.errView.SetText("[yellow]Saving...[-]")
	go func() {
		result := d.session.Save(context.Background())
		d.app.QueueUpdateDraw(func() {
			d.saving = false
			saved := len(result.Saved)
			if result.Err != nil || !d.done {
				if d.closed {
					d.app.GetStatusBar().ShowError(d.session.Error())
					return
				}
				if saved > 0 {
					d.app.GetStatusBar().ShowError(fmt.Sprintf("%d subscribers saved before the error", saved))
				}
				d.render()
				return
			}
			d.app.GetStatusBar().ShowSuccess(fmt.Sprintf("%d subscribers added", saved))
			d.close(saved)
		})
	}()
}
