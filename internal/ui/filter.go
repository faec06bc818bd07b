package ui

import (
	"strings"
)

// Filter は一覧画面のクライアント側フィルタを管理する。
// クエリは大文字小文字を区別しない部分一致。
type Filter struct {
	query string
}

// SetQuery はフィルタクエリを設定する。空白のみの場合は解除と同じ。
func (f *Filter) SetQuery(query string) {
	f.query = strings.TrimSpace(query)
}

// Clear はフィルタを解除する。
func (f *Filter) Clear() {
	f.query = ""
}

// Query は現在のクエリを返す。
func (f *Filter) Query() string {
	return f.query
}

// Active はフィルタが有効かどうかを返す。
func (f *Filter) Active() bool {
	return f.query != ""
}

// MatchAny は値のいずれかがクエリにマッチするかどうかを返す。
func (f *Filter) MatchAny(values ...string) bool {
	if !f.Active() {
		return true
	}
	query := strings.ToLower(f.query)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// FilterItems はフィルタ条件にマッチするアイテムを抽出する。
func FilterItems[T any](items []T, filter *Filter, getValues func(T) []string) []T {
	if !filter.Active() {
		return items
	}

	var result []T
	for _, item := range items {
		if filter.MatchAny(getValues(item)...) {
			result = append(result, item)
		}
	}
	return result
}

// FormatFilterStatus はフィルタの状態を文字列で返す。
func (f *Filter) FormatFilterStatus() string {
	if !f.Active() {
		return ""
	}
	return "Filter: \"" + f.query + "\""
}
