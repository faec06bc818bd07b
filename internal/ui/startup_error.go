package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewStartupErrorScreen は起動時の読み込みエラー画面を生成する。
// hintsには利用者に確認を促す項目を渡す。
func NewStartupErrorScreen(errorMessage string, hints []string, onRetry, onExit func()) *tview.Modal {
	text := "Failed to load subscribers:\n\n" + errorMessage
	if len(hints) > 0 {
		text += "\n\nPlease check:"
		for _, h := range hints {
			text += "\n- " + h
		}
	}

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Retry", "Exit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Retry" {
				if onRetry != nil {
					onRetry()
				}
			} else if onExit != nil {
				onExit()
			}
		})

	modal.SetTitle(" Connection Error ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)
	modal.SetBackgroundColor(tcell.ColorBlack)
	return modal
}
