package apperr

import (
	"errors"
	"strings"
	"testing"
)

func TestValkeyError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewValkeyError("SET", "sub:IMSI001010000000001", cause)
		got := err.Error()
		if !strings.Contains(got, "operation=SET") {
			t.Errorf("error message should contain 'operation=SET': %s", got)
		}
		if !strings.Contains(got, "key=sub:IMSI001010000000001") {
			t.Errorf("error message should contain key: %s", got)
		}
		if !strings.Contains(got, "cause=connection refused") {
			t.Errorf("error message should contain cause: %s", got)
		}
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := NewValkeyError("SMEMBERS", "catalog:apns", nil)
		if strings.Contains(err.Error(), "cause=") {
			t.Errorf("error message should not contain cause: %s", err.Error())
		}
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("timeout")
		err := NewValkeyError("GET", "sub:x", cause)
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false, want true")
		}
		if !errors.Is(err, ErrValkeyCommand) {
			t.Error("errors.Is(err, ErrValkeyCommand) = false, want true")
		}
	})
}
