package ui

import "fmt"

// DefaultPageSize は一覧画面のページサイズ
const DefaultPageSize = 50

// Pagination はページネーション状態を管理する。
type Pagination struct {
	TotalItems  int
	PageSize    int
	CurrentPage int
}

// NewPagination は新しいPaginationを生成する。
func NewPagination(pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pagination{PageSize: pageSize, CurrentPage: 1}
}

// SetTotalItems は総アイテム数を設定し、範囲外のページ番号を補正する。
func (p *Pagination) SetTotalItems(total int) {
	p.TotalItems = total
	p.CurrentPage = min(max(p.CurrentPage, 1), p.TotalPages())
}

// TotalPages は総ページ数を返す。アイテムが無い場合も1。
func (p *Pagination) TotalPages() int {
	if p.TotalItems == 0 {
		return 1
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

func (p *Pagination) start() int {
	return (p.CurrentPage - 1) * p.PageSize
}

func (p *Pagination) end() int {
	return min(p.CurrentPage*p.PageSize, p.TotalItems)
}

// NextPage は次のページに移動する。移動できない場合はfalse。
func (p *Pagination) NextPage() bool {
	if p.CurrentPage < p.TotalPages() {
		p.CurrentPage++
		return true
	}
	return false
}

// PrevPage は前のページに移動する。移動できない場合はfalse。
func (p *Pagination) PrevPage() bool {
	if p.CurrentPage > 1 {
		p.CurrentPage--
		return true
	}
	return false
}

// FirstPage は最初のページに移動する。
func (p *Pagination) FirstPage() {
	p.CurrentPage = 1
}

// GetPageItems はスライスから現在のページのアイテムを取得する。
func GetPageItems[T any](items []T, p *Pagination) []T {
	p.SetTotalItems(len(items))
	if p.start() >= len(items) {
		return []T{}
	}
	return items[p.start():p.end()]
}

// FormatPageInfo はページ情報の文字列を生成する。
func (p *Pagination) FormatPageInfo() string {
	if p.TotalItems == 0 {
		return "No items"
	}
	return fmt.Sprintf("%d-%d of %d (Page %d/%d)", p.start()+1, p.end(), p.TotalItems, p.CurrentPage, p.TotalPages())
}
