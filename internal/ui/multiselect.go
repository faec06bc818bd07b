package ui

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	checkedMark   = "[x] "
	uncheckedMark = "[ ] "
)

// MultiSelect は選択肢から複数の値を選ぶリスト。
// 選択肢に無い値が選択済みとして渡された場合も、末尾に表示して保持する。
type MultiSelect struct {
	list     *tview.List
	options  []string
	selected map[string]bool
	onChange func(selected []string)
}

// NewMultiSelect は新しいMultiSelectを生成する。
func NewMultiSelect(title string, options, selected []string) *MultiSelect {
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).
		SetTitle(" " + title + " ").
		SetBorderColor(tcell.ColorBlue)

	m := &MultiSelect{
		list:     list,
		options:  slices.Clone(options),
		selected: make(map[string]bool, len(selected)),
	}
	for _, v := range selected {
		m.selected[v] = true
		if !slices.Contains(m.options, v) {
			m.options = append(m.options, v)
		}
	}

	for _, opt := range m.options {
		list.AddItem(m.label(opt), "", 0, nil)
	}
	list.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		m.Toggle(index)
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == RuneToggle {
			m.Toggle(list.GetCurrentItem())
			return nil
		}
		return event
	})
	return m
}

// SetOnChange は選択状態が変わった時のコールバックを設定する。
func (m *MultiSelect) SetOnChange(handler func(selected []string)) {
	m.onChange = handler
}

// Toggle は指定位置の選択状態を反転する。
func (m *MultiSelect) Toggle(index int) {
	if index < 0 || index >= len(m.options) {
		return
	}
	opt := m.options[index]
	m.selected[opt] = !m.selected[opt]
	m.list.SetItemText(index, m.label(opt), "")
	if m.onChange != nil {
		m.onChange(m.Selected())
	}
}

// Selected は選択中の値を表示順で返す。
func (m *MultiSelect) Selected() []string {
	selected := []string{}
	for _, opt := range m.options {
		if m.selected[opt] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// Options は表示中の選択肢を返す。
func (m *MultiSelect) Options() []string {
	return slices.Clone(m.options)
}

// GetList は内部のtview.Listを返す。
func (m *MultiSelect) GetList() *tview.List {
	return m.list
}

func (m *MultiSelect) label(opt string) string {
	mark := uncheckedMark
	if m.selected[opt] {
		mark = checkedMark
	}
	return tview.Escape(mark + opt)
}
