package subscriber

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oyaguma3/nms-subscriber-console/internal/csv"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/rivo/tview"
)

type recordingExportAudit struct {
	filename string
	count    int
}

func (r *recordingExportAudit) LogExport(filename string, count int) {
	r.filename = filename
	r.count = count
}

func TestExportScreen_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	lister := &fakeLister{subs: []*model.Subscriber{editedSubscriber()}}
	audit := &recordingExportAudit{}
	app := ui.NewApp()

	s := NewExportScreen(app, lister, audit, nil)
	s.GetForm().GetFormItemByLabel(labelOutputFile).(*tview.InputField).SetText(path)
	s.handleExport()

	if audit.filename != path || audit.count != 1 {
		t.Errorf("LogExport(%q, %d)", audit.filename, audit.count)
	}
	if !strings.Contains(s.resultView.GetText(true), "Exported: 1 subscribers") {
		t.Errorf("result = %q", s.resultView.GetText(true))
	}

	// 出力したファイルはそのまま一括登録に使える
	f, closeFile, err := csv.OpenSubscriberFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = closeFile() }()
	infos, err := csv.ParseSubscriberFile(f)
	if err != nil {
		t.Fatalf("ParseSubscriberFile() error = %v", err)
	}
	if len(infos) != 1 || infos[0].IMSI != testIMSI1 || infos[0].AuthKey != testKeyHex || infos[0].AuthOpc != testOpcHex {
		t.Errorf("re-imported = %+v", infos[0])
	}
}

func TestExportScreen_Errors(t *testing.T) {
	audit := &recordingExportAudit{}
	app := ui.NewApp()
	s := NewExportScreen(app, &fakeLister{}, audit, nil)

	s.GetForm().GetFormItemByLabel(labelOutputFile).(*tview.InputField).SetText("  ")
	s.handleExport()
	if !strings.Contains(app.GetStatusBar().Text(), "Output file path is required") {
		t.Errorf("status = %q", app.GetStatusBar().Text())
	}

	dir := t.TempDir()
	s.GetForm().GetFormItemByLabel(labelOutputFile).(*tview.InputField).SetText(filepath.Join(dir, "missing", "out.csv"))
	s.handleExport()
	if !strings.Contains(s.resultView.GetText(true), "failed to create") {
		t.Errorf("result = %q", s.resultView.GetText(true))
	}
	if audit.filename != "" {
		t.Error("failed export must not be audited")
	}
	if _, err := os.Stat(filepath.Join(dir, "missing")); !os.IsNotExist(err) {
		t.Error("export must not create directories")
	}
}
