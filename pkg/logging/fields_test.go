package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithEventID(t *testing.T) {
	attr := WithEventID(EventBulkAddFailed)
	if attr.Key != FieldEventID {
		t.Errorf("Key = %q, want %q", attr.Key, FieldEventID)
	}
	if attr.Value.String() != "BULK_ADD_FAILED" {
		t.Errorf("Value = %q, want %q", attr.Value.String(), "BULK_ADD_FAILED")
	}
}

func TestWithError(t *testing.T) {
	t.Run("With error", func(t *testing.T) {
		attr := WithError(errors.New("connection failed"))
		if attr.Key != FieldError {
			t.Errorf("Key = %q, want %q", attr.Key, FieldError)
		}
		if attr.Value.String() != "connection failed" {
			t.Errorf("Value = %q, want %q", attr.Value.String(), "connection failed")
		}
	})

	t.Run("With nil error", func(t *testing.T) {
		attr := WithError(nil)
		if attr.Value.String() != "" {
			t.Errorf("Value = %q, want empty string", attr.Value.String())
		}
	})
}

func TestNumericFields(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want int64
	}{
		{"latency", WithLatency(150), FieldLatencyMs, 150},
		{"http status", WithHTTPStatus(502), FieldHTTPStatus, 502},
		{"count", WithCount(3), FieldCount, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value.Int64() != tt.want {
				t.Errorf("Value = %d, want %d", tt.attr.Value.Int64(), tt.want)
			}
		})
	}
}

func TestWithFile(t *testing.T) {
	attr := WithFile("subscribers.csv")
	if attr.Key != FieldFile || attr.Value.String() != "subscribers.csv" {
		t.Errorf("WithFile() = %v", attr)
	}
}

func TestWithSecret(t *testing.T) {
	if got := WithSecret("auth_key", "8baf473f2f8fd09487cccbd7097c6862"); got.Value.String() != "********" {
		t.Errorf("WithSecret() = %q, want masked", got.Value.String())
	}
	if got := WithSecret("auth_opc", ""); got.Key != "auth_opc" || got.Value.String() != "" {
		t.Errorf("WithSecret(empty) = %v", got)
	}
}

func TestCommonFields(t *testing.T) {
	t.Run("WithIMSI with masking", func(t *testing.T) {
		cf := NewCommonFields(NewMasker(true))
		attr := cf.WithIMSI("IMSI001010123456789")
		if attr.Key != FieldIMSI {
			t.Errorf("Key = %q, want %q", attr.Key, FieldIMSI)
		}
		if attr.Value.String() != "IMSI001010********9" {
			t.Errorf("Value = %q", attr.Value.String())
		}
	})

	t.Run("NewCommonFields with nil masker", func(t *testing.T) {
		cf := NewCommonFields(nil)
		attr := cf.WithIMSI("IMSI001010123456789")
		// nilの場合はマスキング無効で初期化される
		if attr.Value.String() != "IMSI001010123456789" {
			t.Errorf("Value = %q", attr.Value.String())
		}
	})

	t.Run("SubscriberLogFields", func(t *testing.T) {
		cf := NewCommonFields(NewMasker(true))
		fields := cf.SubscriberLogFields(EventSubscriberSaved, "IMSI001010123456789")
		if len(fields) != 2 {
			t.Fatalf("fields length = %d, want 2", len(fields))
		}
		first, ok := fields[0].(slog.Attr)
		if !ok || first.Key != FieldEventID {
			t.Errorf("fields[0] = %v, want event_id attr", fields[0])
		}
	})
}
