package subscriber

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

const (
	pageEditDialog   = "edit-dialog"
	pageStaticIPForm = "static-ip-form"

	labelID       = "Subscriber ID"
	labelAPN      = "APN"
	labelStaticIP = "Static IP"
)

var editTabs = []struct {
	table subscriber.EditTable
	key   tcell.Key
	title string
}{
	{subscriber.EditTableSubscriber, ui.KeyTabSubscriber, "Subscriber"},
	{subscriber.EditTableTrafficPolicy, ui.KeyTabTrafficPolicy, "Traffic Policy"},
	{subscriber.EditTableStaticIPs, ui.KeyTabStaticIPs, "Static IPs"},
}

// EditDialog は加入者1件の編集ダイアログを表す。
// 加入者情報・トラフィックポリシー・静的IPの3つのタブを持つ。
type EditDialog struct {
	app     *ui.App
	session *subscriber.EditSession
	choices *Choices
	onClose func(saved bool)

	header   *tview.TextView
	tabs     *tview.Pages
	form     *tview.Form
	apns     *ui.MultiSelect
	policies *ui.MultiSelect
	ipTable  *tview.Table
	errView  *tview.TextView
	layout   *tview.Flex

	saving bool
	saved  bool
	closed bool
}

// OpenEditDialog は加入者を読み込んで編集ダイアログを生成する。
// tableは最初に表示するタブ。onCloseは保存に成功した場合と、利用者が閉じた場合に呼ばれる。
func OpenEditDialog(ctx context.Context, app *ui.App, repo subscriber.Repository, auditLog subscriber.AuditLogger,
	fields *logging.CommonFields, choices *Choices, id string, table subscriber.EditTable,
	onClose func(saved bool)) (*EditDialog, error) {
	d := &EditDialog{
		app:     app,
		choices: choices,
		onClose: onClose,
	}

	// 保存はバックグラウンドで行うため、ここでは保存成功だけを記録する
	session, err := subscriber.LoadEditSession(ctx, repo, app.GetStatusBar(), auditLog, fields, id, table, func() {
		d.saved = true
	})
	if err != nil {
		return nil, err
	}
	d.session = session
	d.build()
	return d, nil
}

// Show はダイアログを表示する。
func (d *EditDialog) Show() {
	d.app.ShowModal(pageEditDialog, d.layout, nil)
	d.switchTab(d.session.Table())
}

// Session は内部のEditSessionを返す。
func (d *EditDialog) Session() *subscriber.EditSession {
	return d.session
}

func (d *EditDialog) build() {
	sub := d.session.Subscriber()

	d.header = tview.NewTextView().SetDynamicColors(true)
	d.errView = tview.NewTextView().SetDynamicColors(true)

	d.buildSubscriberTab(sub)
	d.apns = ui.NewMultiSelect("Active APNs", d.choices.APNs, sub.ActiveAPNs)
	d.apns.SetOnChange(d.session.SetActiveAPNs)
	d.policies = ui.NewMultiSelect("Active Policies", d.choices.Policies, sub.ActivePolicies)
	d.policies.SetOnChange(d.session.SetActivePolicies)
	d.buildStaticIPTab()

	trafficPolicy := tview.NewFlex().
		AddItem(d.apns.GetList(), 0, 1, true).
		AddItem(d.policies.GetList(), 0, 1, false)
	d.apns.GetList().SetInputCapture(chainCapture(d.apns.GetList().GetInputCapture(), d.focusOnTab(d.policies.GetList())))
	d.policies.GetList().SetInputCapture(chainCapture(d.policies.GetList().GetInputCapture(), d.focusOnTab(d.apns.GetList())))

	d.tabs = tview.NewPages().
		AddPage(subscriber.EditTableSubscriber.String(), d.form, true, false).
		AddPage(subscriber.EditTableTrafficPolicy.String(), trafficPolicy, true, false).
		AddPage(subscriber.EditTableStaticIPs.String(), d.ipTable, true, false)

	hint := tview.NewTextView().
		SetText(ui.FormatKeyBindingHint(ui.GetEditDialogKeyBindings())).
		SetTextColor(tcell.ColorGray)

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.header, 1, 0, false).
		AddItem(d.tabs, 0, 1, true).
		AddItem(d.errView, 2, 0, false).
		AddItem(hint, 1, 0, false)
	d.layout.SetBorder(true).
		SetTitle(" Edit Subscriber: " + sub.ID + " ").
		SetBorderColor(tcell.ColorBlue)

	d.setupKeyBindings()
}

func (d *EditDialog) buildSubscriberTab(sub *model.Subscriber) {
	states, stateIdx := withCurrent(d.choices.stateOptions(), string(sub.Lte.State))
	plans, planIdx := withCurrent(d.choices.DataPlans, sub.Lte.SubProfile)

	d.form = tview.NewForm()
	d.form.AddInputField(labelID, sub.ID, 20, nil, nil)
	d.form.GetFormItemByLabel(labelID).(*tview.InputField).SetDisabled(true)
	d.form.AddInputField(labelName, sub.Name, 30, nil, d.session.SetName).
		AddDropDown(labelState, states, stateIdx, func(option string, _ int) {
			d.session.SetState(model.SubscriberState(option))
		}).
		AddDropDown(labelDataPlan, plans, planIdx, func(option string, _ int) {
			d.session.SetSubProfile(option)
		}).
		AddInputField(labelAuthKey, d.session.AuthKey(), 34, nil, d.session.SetAuthKey).
		AddInputField(labelAuthOpc, d.session.AuthOpc(), 34, nil, d.session.SetAuthOpc)
}

func (d *EditDialog) buildStaticIPTab() {
	d.ipTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	d.ipTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			if id := d.selectedStaticIP(); id != "" {
				d.showStaticIPForm(id, false)
			}
			return nil
		}
		switch event.Rune() {
		case ui.RuneNewRow:
			d.showStaticIPForm(d.session.AddStaticIP(), true)
			return nil
		case ui.RuneDeleteRow:
			if id := d.selectedStaticIP(); id != "" {
				_ = d.session.DeleteStaticIP(id)
				d.renderStaticIPs()
			}
			return nil
		}
		return event
	})
	d.renderStaticIPs()
}

// focusOnTab はTabキーで指定のプリミティブへフォーカスを移すハンドラを返す。
func (d *EditDialog) focusOnTab(next tview.Primitive) func(*tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			d.app.SetFocus(next)
			return nil
		}
		return event
	}
}

func (d *EditDialog) renderStaticIPs() {
	d.ipTable.Clear()
	for col, header := range []string{labelAPN, labelStaticIP} {
		d.ipTable.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}
	rows := d.session.StaticIPs()
	for i, row := range rows {
		d.ipTable.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(row.APNName)).SetReference(row.ID).SetExpansion(1))
		d.ipTable.SetCell(i+1, 1, tview.NewTableCell(tview.Escape(row.StaticIP)).SetExpansion(1))
	}
	d.ipTable.SetTitle(" " + ui.FormatKeyBindingHint(ui.GetStaticIPKeyBindings()) + " ")
	if r, _ := d.ipTable.GetSelection(); len(rows) > 0 && (r < 1 || r > len(rows)) {
		d.ipTable.Select(1, 0)
	}
}

func (d *EditDialog) selectedStaticIP() string {
	row, _ := d.ipTable.GetSelection()
	if row < 1 {
		return ""
	}
	cell := d.ipTable.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	id, _ := cell.GetReference().(string)
	return id
}

// showStaticIPForm は静的IP行の編集フォームを表示する。
// 追加した直後の行でキャンセルした場合は行を削除する。
func (d *EditDialog) showStaticIPForm(id string, added bool) {
	var current model.StaticIPRow
	for _, row := range d.session.StaticIPs() {
		if row.ID == id {
			current = row
		}
	}

	apns, apnIdx := withCurrent(d.choices.APNs, current.APNName)
	form := tview.NewForm()
	if len(apns) > 0 {
		form.AddDropDown(labelAPN, apns, apnIdx, nil)
	} else {
		form.AddInputField(labelAPN, current.APNName, 20, nil, nil)
	}
	form.AddInputField(labelStaticIP, current.StaticIP, 20, nil, nil)

	closeForm := func() {
		d.app.CloseModal(pageStaticIPForm, d.ipTable)
		d.renderStaticIPs()
	}
	cancel := func() {
		if added {
			_ = d.session.DeleteStaticIP(id)
		}
		closeForm()
	}
	form.AddButton("OK", func() {
		apn := formValue(form, labelAPN)
		ip := strings.TrimSpace(form.GetFormItemByLabel(labelStaticIP).(*tview.InputField).GetText())
		_ = d.session.UpdateStaticIP(id, apn, ip)
		closeForm()
	})
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)
	form.SetBorder(true).
		SetTitle(" Static IP ").
		SetBorderColor(tcell.ColorWhite)

	d.app.ShowModal(pageStaticIPForm, ui.Centered(form, 50, 9), form)
}

// formValue はドロップダウンまたは入力欄の値を返す。
func formValue(form *tview.Form, label string) string {
	switch item := form.GetFormItemByLabel(label).(type) {
	case *tview.DropDown:
		_, v := item.GetCurrentOption()
		return v
	case *tview.InputField:
		return strings.TrimSpace(item.GetText())
	}
	return ""
}

func (d *EditDialog) switchTab(table subscriber.EditTable) {
	d.session.SetTable(table)
	d.tabs.SwitchToPage(table.String())

	var header []string
	for _, tab := range editTabs {
		label := ui.KeyBinding{Key: tab.key}.Label() + " " + tab.title
		if tab.table == table {
			label = "[black:yellow] " + label + " [-:-]"
		} else {
			label = " " + label + " "
		}
		header = append(header, label)
	}
	d.header.SetText(strings.Join(header, " "))

	switch table {
	case subscriber.EditTableTrafficPolicy:
		d.app.SetFocus(d.apns.GetList())
	case subscriber.EditTableStaticIPs:
		d.app.SetFocus(d.ipTable)
	default:
		d.app.SetFocus(d.form)
	}
}

func (d *EditDialog) setupKeyBindings() {
	d.layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.saving {
			return nil
		}
		for _, tab := range editTabs {
			if event.Key() == tab.key {
				d.switchTab(tab.table)
				return nil
			}
		}
		switch event.Key() {
		case tcell.KeyEsc:
			d.close(false)
			return nil
		case ui.KeySave:
			d.save()
			return nil
		}
		return event
	})
}

func (d *EditDialog) renderError() {
	if msg := d.session.Error(); msg != "" {
		d.errView.SetText("[red]" + tview.Escape(msg) + "[-]")
	} else {
		d.errView.SetText("")
	}
}

// save は変更をバックグラウンドで保存する。保存中は入力を受け付けない。
func (d *EditDialog) save() {
	d.saving = true
	d.saved = false
	d.errView.SetText("[yellow]Saving...[-]")
	go func() {
		err := d.session.Save(context.Background())
		d.app.QueueUpdateDraw(func() {
			d.saving = false
			if err != nil || !d.saved {
				d.renderError()
				return
			}
			d.close(true)
		})
	}()
}

func (d *EditDialog) close(saved bool) {
	if d.closed {
		return
	}
	d.closed = true
	d.app.RemovePage(pageEditDialog)
	if d.onClose != nil {
		d.onClose(saved)
	}
}
