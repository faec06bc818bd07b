package subscriber

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"go.uber.org/mock/gomock"
)

const (
	testIMSI1  = "IMSI001010000000001"
	testIMSI2  = "IMSI001010000000002"
	testKeyHex = "8baf473f2f8fd09487cccbd7097c6862"
	testOpcHex = "8e27b6af0e692e750f32667a3b14605d"
)

func testChoices() *Choices {
	return &Choices{
		APNs:      []string{"ims", "internet"},
		Policies:  []string{"default", "rule_web"},
		DataPlans: []string{"default", "gold"},
		States:    []model.SubscriberState{model.StateActive, model.StateInactive},
	}
}

type addDialogMocks struct {
	repo   *subscriber.MockRepository
	audit  *subscriber.MockAuditLogger
	closed []int
}

func newAddDialog(t *testing.T) (*AddDialog, *ui.App, *addDialogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &addDialogMocks{
		repo:  subscriber.NewMockRepository(ctrl),
		audit: subscriber.NewMockAuditLogger(ctrl),
	}
	m.repo.EXPECT().Known().Return(map[string]*model.Subscriber{}).AnyTimes()

	app := ui.NewApp()
	adder := subscriber.NewBulkAdder(m.repo, m.audit, nil)
	d := NewAddDialog(app, m.repo, adder, m.audit, testChoices(), func(saved int) {
		m.closed = append(m.closed, saved)
	})
	return d, app, m
}

func TestAddDialog_Upload(t *testing.T) {
	d, _, m := newAddDialog(t)

	path := filepath.Join(t.TempDir(), "subs.csv")
	content := "alice," + testIMSI1 + "," + testKeyHex + "," + testOpcHex + ",ACTIVE,default,internet|ims\n" +
		"bob," + testIMSI2 + "," + testKeyHex + ",,INACTIVE,gold,\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	m.audit.EXPECT().LogImport("subs.csv", 2)

	d.upload(path)

	if got := len(d.Session().Rows()); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}
	if got := d.table.GetCell(1, 6).Text; got != "internet,ims" {
		t.Errorf("apns cell = %q", got)
	}
	if got := d.table.GetCell(2, 4).Text; got != "INACTIVE" {
		t.Errorf("state cell = %q", got)
	}
	if d.selectedRowID() != d.Session().Rows()[0].ID {
		t.Error("first row should be selected")
	}
}

func TestAddDialog_UploadErrors(t *testing.T) {
	d, app, _ := newAddDialog(t)

	d.upload(filepath.Join(t.TempDir(), "missing.csv"))
	if !strings.Contains(app.GetStatusBar().Text(), "missing.csv") {
		t.Errorf("status = %q, want open error", app.GetStatusBar().Text())
	}

	path := filepath.Join(t.TempDir(), "broken.csv")
	if err := os.WriteFile(path, []byte("only,three,fields\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	d.upload(path)
	if got := app.GetStatusBar().Text(); !strings.Contains(got, "failed parsing only,three,fields") {
		t.Errorf("status = %q, want parse error", got)
	}
	if len(d.Session().Rows()) != 0 {
		t.Error("failed upload must not stage rows")
	}
}

func TestAddDialog_RowForm(t *testing.T) {
	d, _, _ := newAddDialog(t)

	info := &model.SubscriberInfo{
		IMSI:     testIMSI1,
		Name:     "alice",
		AuthKey:  testKeyHex,
		AuthOpc:  testOpcHex,
		State:    model.StateInactive,
		DataPlan: "gold",
		APNs:     []string{"internet"},
		Policies: []string{"rule_web"},
	}
	if _, err := d.Session().AddRow(info); err != nil {
		t.Fatalf("AddRow() error = %v", err)
	}
	d.render()

	id := d.selectedRowID()
	if id == "" {
		t.Fatal("selectedRowID() is empty")
	}
	form := NewRowForm(d.app, "Edit Subscriber", d.choices, d.rowInfo(id), nil, nil)
	got := form.Info()
	if got.IMSI != info.IMSI || got.Name != info.Name || got.AuthOpc != info.AuthOpc {
		t.Errorf("Info() = %+v", got)
	}
	if got.State != model.StateInactive || got.DataPlan != "gold" {
		t.Errorf("Info() state = %s plan = %s", got.State, got.DataPlan)
	}
	if len(got.APNs) != 1 || got.APNs[0] != "internet" || len(got.Policies) != 1 || got.Policies[0] != "rule_web" {
		t.Errorf("Info() apns = %v policies = %v", got.APNs, got.Policies)
	}
}

func TestAddDialog_RowFormValidationError(t *testing.T) {
	d, _, _ := newAddDialog(t)

	d.showRowForm("")
	if _, err := d.Session().AddRow(&model.SubscriberInfo{IMSI: "bad"}); err == nil {
		t.Fatal("AddRow() should fail for invalid IMSI")
	}
	d.render()
	if got := d.errView.GetText(true); !strings.Contains(got, "imsi invalid") {
		t.Errorf("error view = %q", got)
	}
}

func TestAddDialog_CloseOnce(t *testing.T) {
	d, _, m := newAddDialog(t)
	d.close(0)
	d.close(3)
	if len(m.closed) != 1 || m.closed[0] != 0 {
		t.Errorf("onClose calls = %v, want [0]", m.closed)
	}
}

func TestStagedRowCells(t *testing.T) {
	got := stagedRowCells(&model.SubscriberInfo{
		IMSI: testIMSI1, Name: "alice", State: model.StateActive, DataPlan: "default",
		APNs: []string{"internet", "ims"}, Policies: []string{},
	})
	want := []string{testIMSI1, "alice", "", "", "ACTIVE", "default", "internet,ims", ""}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("stagedRowCells() = %v, want %v", got, want)
	}
}
