package subscriber

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/config"
	"github.com/oyaguma3/nms-subscriber-console/internal/store"
	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

// Lister は一覧画面が参照する加入者ストアのインターフェース。
type Lister interface {
	Load(ctx context.Context) error
	List() []*model.Subscriber
}

var _ Lister = (*store.SubscriberStore)(nil)

var listHeaders = []string{"Subscriber ID", "Name", "Service", "Data Plan", "APNs"}

// ListScreen は加入者一覧画面を表す。
type ListScreen struct {
	table       *tview.Table
	app         *ui.App
	store       Lister
	subscribers []*model.Subscriber
	filter      *ui.Filter
	pagination  *ui.Pagination
	onAdd       func()
	onEdit      func(id string, table subscriber.EditTable)
	onExport    func()
	onBack      func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, lister Lister) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Subscribers ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &ListScreen{
		table:      table,
		app:        app,
		store:      lister,
		filter:     &ui.Filter{},
		pagination: ui.NewPagination(ui.DefaultPageSize),
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnAdd は一括登録時のコールバックを設定する。
func (s *ListScreen) SetOnAdd(handler func()) {
	s.onAdd = handler
}

// SetOnEdit は編集時のコールバックを設定する。tableは最初に表示するタブ。
func (s *ListScreen) SetOnEdit(handler func(id string, table subscriber.EditTable)) {
	s.onEdit = handler
}

// SetOnExport はエクスポート時のコールバックを設定する。
func (s *ListScreen) SetOnExport(handler func()) {
	s.onExport = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.table
}

// Show はストアが保持する加入者を再描画する。
func (s *ListScreen) Show() {
	s.subscribers = s.store.List()
	s.render()
}

// SetFilter はフィルタを設定する。
func (s *ListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.pagination.FirstPage()
	s.render()
}

// SelectedID は選択されている加入者IDを返す。
func (s *ListScreen) SelectedID() string {
	row, _ := s.table.GetSelection()
	pageItems := s.pageItems()
	idx := row - 1
	if idx < 0 || idx >= len(pageItems) {
		return ""
	}
	return pageItems[idx].ID
}

func (s *ListScreen) pageItems() []*model.Subscriber {
	filtered := ui.FilterItems(s.subscribers, s.filter, func(sub *model.Subscriber) []string {
		return []string{sub.ID, sub.Name}
	})
	return ui.GetPageItems(filtered, s.pagination)
}

func (s *ListScreen) render() {
	s.table.Clear()

	for col, header := range listHeaders {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, sub := range s.pageItems() {
		row := i + 1
		stateColor := tcell.ColorGreen
		if sub.Lte.State != model.StateActive {
			stateColor = tcell.ColorGray
		}
		s.table.SetCell(row, 0, tview.NewTableCell(sub.ID).SetExpansion(1))
		s.table.SetCell(row, 1, tview.NewTableCell(tview.Escape(sub.Name)).SetExpansion(1))
		s.table.SetCell(row, 2, tview.NewTableCell(string(sub.Lte.State)).SetTextColor(stateColor).SetExpansion(1))
		s.table.SetCell(row, 3, tview.NewTableCell(tview.Escape(sub.Lte.SubProfile)).SetExpansion(1))
		s.table.SetCell(row, 4, tview.NewTableCell(tview.Escape(strings.Join(sub.ActiveAPNs, ","))).
			SetTextColor(tcell.ColorGray).
			SetExpansion(1))
	}

	title := " Subscribers "
	if s.filter.Active() {
		title += "[yellow](" + tview.Escape(s.filter.FormatFilterStatus()) + ")[-] "
	}
	title += "[gray]" + s.pagination.FormatPageInfo() + "[-] "
	s.table.SetTitle(title)

	if s.table.GetRowCount() > 1 {
		s.table.Select(1, 0)
	}
}

func (s *ListScreen) edit(table subscriber.EditTable) {
	if id := s.SelectedID(); id != "" && s.onEdit != nil {
		s.onEdit(id, table)
	}
}

// refresh はバックエンドから加入者を再読み込みし、完了後に再描画する。
func (s *ListScreen) refresh() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.InitialLoadTimeout)
		defer cancel()
		err := s.store.Load(ctx)
		s.app.QueueUpdateDraw(func() {
			if err != nil {
				s.app.GetStatusBar().ShowError("Failed to refresh: " + err.Error())
				return
			}
			s.Show()
			s.app.GetStatusBar().ShowSuccess("Refreshed")
		})
	}()
}

func (s *ListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active() {
				s.SetFilter("")
				return nil
			}
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case ui.KeyAdd:
			if s.onAdd != nil {
				s.onAdd()
			}
			return nil
		case ui.KeyEdit, tcell.KeyEnter:
			s.edit(subscriber.EditTableSubscriber)
			return nil
		case ui.KeyRefresh:
			s.refresh()
			return nil
		case tcell.KeyPgUp:
			if s.pagination.PrevPage() {
				s.render()
			}
			return nil
		case tcell.KeyPgDn:
			if s.pagination.NextPage() {
				s.render()
			}
			return nil
		}

		switch event.Rune() {
		case ui.RuneAdd:
			if s.onAdd != nil {
				s.onAdd()
			}
			return nil
		case ui.RuneEdit:
			s.edit(subscriber.EditTableSubscriber)
			return nil
		case ui.RuneEditPolicy:
			s.edit(subscriber.EditTableTrafficPolicy)
			return nil
		case ui.RuneEditStaticIPs:
			s.edit(subscriber.EditTableStaticIPs)
			return nil
		case ui.RuneExport:
			if s.onExport != nil {
				s.onExport()
			}
			return nil
		case ui.RuneRefresh:
			s.refresh()
			return nil
		case ui.RuneFilter:
			s.showFilterDialog()
			return nil
		case ui.RuneQuit:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}

		return event
	})
}

func (s *ListScreen) showFilterDialog() {
	const page = "filter-dialog"
	dialog := ui.NewInputDialog("Filter Subscribers", "ID or name contains:", s.filter.Query(), 30,
		func(value string) {
			s.SetFilter(value)
			s.app.CloseModal(page, s.table)
		},
		func() {
			s.app.CloseModal(page, s.table)
		},
	)
	s.app.ShowModal(page, ui.Centered(dialog.GetForm(), 60, 7), dialog.GetForm())
}
