package subscriber

import (
	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

// フォーム項目のラベル
const (
	labelIMSI     = "IMSI"
	labelName     = "Subscriber Name"
	labelAuthKey  = "Auth Key"
	labelAuthOpc  = "Auth OPC"
	labelState    = "Service"
	labelDataPlan = "Data Plan"
)

// RowForm は一括登録の1行を入力するフォーム。
// 左側に基本項目、右側にAPNとポリシーの選択リストを並べる。
type RowForm struct {
	form     *tview.Form
	apns     *ui.MultiSelect
	policies *ui.MultiSelect
	errView  *tview.TextView
	layout   *tview.Flex
	app      *ui.App
	onSubmit func(info *model.SubscriberInfo)
	onCancel func()
}

// NewRowForm は新しいRowFormを生成する。infoがnilの場合は空のフォームになる。
func NewRowForm(app *ui.App, title string, choices *Choices, info *model.SubscriberInfo,
	onSubmit func(info *model.SubscriberInfo), onCancel func()) *RowForm {
	if info == nil {
		info = &model.SubscriberInfo{}
	}

	f := &RowForm{
		form:     tview.NewForm(),
		apns:     ui.NewMultiSelect("APNs", choices.APNs, info.APNs),
		policies: ui.NewMultiSelect("Policies", choices.Policies, info.Policies),
		errView:  tview.NewTextView().SetDynamicColors(true),
		app:      app,
		onSubmit: onSubmit,
		onCancel: onCancel,
	}

	states, stateIdx := withCurrent(choices.stateOptions(), string(info.State))
	plans, planIdx := withCurrent(choices.DataPlans, info.DataPlan)

	f.form.AddInputField(labelIMSI, info.IMSI, 20, nil, nil).
		AddInputField(labelName, info.Name, 30, nil, nil).
		AddInputField(labelAuthKey, info.AuthKey, 34, nil, nil).
		AddInputField(labelAuthOpc, info.AuthOpc, 34, nil, nil).
		AddDropDown(labelState, states, stateIdx, nil).
		AddDropDown(labelDataPlan, plans, planIdx, nil).
		AddButton("OK", f.submit).
		AddButton("Cancel", f.cancel)
	f.form.SetCancelFunc(f.cancel)

	lists := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.apns.GetList(), 0, 1, false).
		AddItem(f.policies.GetList(), 0, 1, false)

	body := tview.NewFlex().
		AddItem(f.form, 0, 3, true).
		AddItem(lists, 0, 2, false)

	hint := tview.NewTextView().
		SetText(ui.FormatKeyBindingHint(ui.GetSelectKeyBindings())).
		SetTextColor(tcell.ColorGray)

	f.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(f.errView, 1, 0, false).
		AddItem(hint, 1, 0, false)
	f.layout.SetBorder(true).
		SetTitle(" " + title + " ").
		SetBorderColor(tcell.ColorWhite)

	f.setupFocusCycle()
	return f
}

// GetLayout は表示用のプリミティブを返す。
func (f *RowForm) GetLayout() *tview.Flex {
	return f.layout
}

// GetForm は内部のtview.Formを返す。
func (f *RowForm) GetForm() *tview.Form {
	return f.form
}

// ShowError はフォーム下部にエラーメッセージを表示する。
func (f *RowForm) ShowError(message string) {
	f.errView.SetText("[red]" + tview.Escape(message) + "[-]")
}

// Info はフォームの入力値から加入者情報を組み立てる。
func (f *RowForm) Info() *model.SubscriberInfo {
	_, state := f.form.GetFormItemByLabel(labelState).(*tview.DropDown).GetCurrentOption()
	_, plan := f.form.GetFormItemByLabel(labelDataPlan).(*tview.DropDown).GetCurrentOption()
	return &model.SubscriberInfo{
		IMSI:     f.text(labelIMSI),
		Name:     f.text(labelName),
		AuthKey:  f.text(labelAuthKey),
		AuthOpc:  f.text(labelAuthOpc),
		State:    model.SubscriberState(state),
		DataPlan: plan,
		APNs:     f.apns.Selected(),
		Policies: f.policies.Selected(),
	}
}

func (f *RowForm) text(label string) string {
	return f.form.GetFormItemByLabel(label).(*tview.InputField).GetText()
}

func (f *RowForm) submit() {
	if f.onSubmit != nil {
		f.onSubmit(f.Info())
	}
}

func (f *RowForm) cancel() {
	if f.onCancel != nil {
		f.onCancel()
	}
}

// setupFocusCycle はフォームと選択リストの間のフォーカス移動を設定する。
// フォーム内のTab移動はtview.Formに任せる。
func (f *RowForm) setupFocusCycle() {
	f.form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == ui.KeyLists {
			f.app.SetFocus(f.apns.GetList())
			return nil
		}
		return event
	})
	f.apns.GetList().SetInputCapture(chainCapture(f.apns.GetList().GetInputCapture(), func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			f.app.SetFocus(f.policies.GetList())
			return nil
		case tcell.KeyEsc:
			f.app.SetFocus(f.form)
			return nil
		}
		return event
	}))
	f.policies.GetList().SetInputCapture(chainCapture(f.policies.GetList().GetInputCapture(), func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyEsc:
			f.app.SetFocus(f.form)
			return nil
		}
		return event
	}))
}

// chainCapture は2つのキー入力ハンドラを順に適用する。
func chainCapture(first, second func(*tcell.EventKey) *tcell.EventKey) func(*tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if first != nil {
			if event = first(event); event == nil {
				return nil
			}
		}
		return second(event)
	}
}
