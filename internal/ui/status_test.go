package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
)

func TestStatusBar_Notify(t *testing.T) {
	tests := []struct {
		name    string
		variant subscriber.Variant
		want    string
	}{
		{"success", subscriber.VariantSuccess, "✓ Subscriber saved successfully"},
		{"error", subscriber.VariantError, "✗ Subscriber saved successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatusBar()
			s.Notify(subscriber.MsgSavedSuccessfully, tt.variant)
			if got := s.Text(); !strings.Contains(got, tt.want) {
				t.Errorf("Text() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestStatusBar_Default(t *testing.T) {
	s := NewStatusBar()
	if got := s.Text(); !strings.Contains(got, "F1:Help") {
		t.Errorf("Text() = %q, want default hint", got)
	}

	s.ShowWithDuration(StatusInfo, "loading", 0)
	if got := s.Text(); !strings.Contains(got, "loading") {
		t.Errorf("Text() = %q, want info message", got)
	}
	s.ShowDefault()
	if got := s.Text(); strings.Contains(got, "loading") {
		t.Errorf("Text() = %q, want default after ShowDefault", got)
	}
}

func TestStatusBar_ReplacesTimer(t *testing.T) {
	s := NewStatusBar()
	s.ShowWithDuration(StatusError, "first", time.Hour)
	s.ShowWithDuration(StatusSuccess, "second", 0)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearTimer != nil {
		t.Error("clearTimer should be cleared when a persistent message replaces it")
	}
}
