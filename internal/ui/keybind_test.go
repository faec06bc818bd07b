package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFormatKeyBindingHint(t *testing.T) {
	got := FormatKeyBindingHint([]KeyBinding{
		{KeyHelp, 0, "Help"},
		{0, RuneQuit, "Back/Quit"},
		{0, RuneToggle, "Toggle"},
		{KeySave, 0, "Save"},
	})
	want := "F1:Help | q:Back/Quit | Space:Toggle | Ctrl+S:Save"
	if got != want {
		t.Errorf("FormatKeyBindingHint() = %q, want %q", got, want)
	}
}

func TestKeyToString_Unknown(t *testing.T) {
	if got := keyToString(tcell.KeyF12); got != "?" {
		t.Errorf("keyToString(F12) = %q", got)
	}
}

func TestFormatHelp(t *testing.T) {
	got := formatHelp(GetDefaultHelpSections())
	for _, want := range []string{"Subscriber List", "Add Subscribers", "Edit Subscriber", "Ctrl+S", "Export"} {
		if !strings.Contains(got, want) {
			t.Errorf("help text missing %q", want)
		}
	}
}
