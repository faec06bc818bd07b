package subscriber

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/csv"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

const labelOutputFile = "Output File"

// ExportAuditLogger はエクスポートの監査ログ出力のインターフェース。
type ExportAuditLogger interface {
	LogExport(filename string, count int)
}

// ExportScreen は加入者エクスポート画面を表す。
// 出力形式は一括登録のCSVと同じ。
type ExportScreen struct {
	form       *tview.Form
	resultView *tview.TextView
	flex       *tview.Flex
	app        *ui.App
	lister     Lister
	auditLog   ExportAuditLogger
	onClose    func()
}

// NewExportScreen は新しいExportScreenを生成する。
func NewExportScreen(app *ui.App, lister Lister, auditLog ExportAuditLogger, onClose func()) *ExportScreen {
	form := tview.NewForm()
	form.SetBorder(true).
		SetTitle(" Export Subscribers ").
		SetBorderColor(tcell.ColorBlue)

	resultView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	resultView.SetBorder(true).
		SetTitle(" Export Result ").
		SetBorderColor(tcell.ColorGray)

	s := &ExportScreen{
		form:       form,
		resultView: resultView,
		flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(form, 7, 0, true).
			AddItem(resultView, 0, 1, false),
		app:      app,
		lister:   lister,
		auditLog: auditLog,
		onClose:  onClose,
	}

	form.AddInputField(labelOutputFile, "subscribers.csv", 50, nil, nil)
	form.AddButton("Export", s.handleExport)
	form.AddButton("Close", s.close)
	form.SetCancelFunc(s.close)
	return s
}

// GetFlex は内部のtview.Flexを返す。
func (s *ExportScreen) GetFlex() *tview.Flex {
	return s.flex
}

// GetForm は内部のtview.Formを返す。
func (s *ExportScreen) GetForm() *tview.Form {
	return s.form
}

func (s *ExportScreen) close() {
	if s.onClose != nil {
		s.onClose()
	}
}

func (s *ExportScreen) handleExport() {
	path := strings.TrimSpace(s.form.GetFormItemByLabel(labelOutputFile).(*tview.InputField).GetText())
	if path == "" {
		s.app.GetStatusBar().ShowError("Output file path is required")
		return
	}

	subscribers := s.lister.List()
	if err := exportSubscribers(path, subscribers); err != nil {
		slog.Error("subscriber export failed", logging.WithFile(path), logging.WithError(err))
		s.resultView.SetText("[red]" + tview.Escape(err.Error()) + "[-]")
		return
	}

	if s.auditLog != nil {
		s.auditLog.LogExport(path, len(subscribers))
	}
	s.resultView.SetText(fmt.Sprintf("[green]Export completed![-]\n\nExported: %d subscribers\nFile: %s\n",
		len(subscribers), tview.Escape(path)))
	s.app.GetStatusBar().ShowSuccess(fmt.Sprintf("Exported %d subscribers to %s", len(subscribers), path))
}

// exportSubscribers は加入者をCSVファイルに書き出す。
func exportSubscribers(path string, subscribers []*model.Subscriber) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := csv.WriteSubscriberCSV(f, subscribers); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
