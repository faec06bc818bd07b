package valkey

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
	"github.com/redis/go-redis/v9"
)

func TestConsoleOptions(t *testing.T) {
	opts := ConsoleOptions("127.0.0.1:6379", "secret")
	if opts.Addr != "127.0.0.1:6379" {
		t.Errorf("Addr = %q", opts.Addr)
	}
	if opts.Password != "secret" {
		t.Errorf("Password = %q", opts.Password)
	}
	if opts.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", opts.Timeout)
	}
	if opts.PoolSize != 2 {
		t.Errorf("PoolSize = %d, want 2", opts.PoolSize)
	}
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), ConsoleOptions(mr.Addr(), ""))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Set(ctx, "test-key", "test-value", 0).Err(); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	val, err := client.Get(ctx, "test-key").Result()
	if err != nil || val != "test-value" {
		t.Errorf("Get() = %q, %v", val, err)
	}
}

func TestNewClientNilOptions(t *testing.T) {
	if _, err := NewClient(context.Background(), nil); err == nil {
		t.Error("NewClient(nil) expected error")
	}
}

func TestNewClientConnectionError(t *testing.T) {
	opts := ConsoleOptions("127.0.0.1:1", "")
	opts.Timeout = 200 * time.Millisecond

	_, err := NewClient(context.Background(), opts)
	if err == nil {
		t.Fatal("NewClient() expected error for unreachable address")
	}
	if !errors.Is(err, apperr.ErrValkeyConnection) {
		t.Errorf("NewClient() error = %v, want ErrValkeyConnection", err)
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnectionError(tt.err); got != tt.want {
				t.Errorf("IsConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsKeyNotFound(t *testing.T) {
	if !IsKeyNotFound(redis.Nil) {
		t.Error("IsKeyNotFound(redis.Nil) = false, want true")
	}
	if IsKeyNotFound(errors.New("other")) {
		t.Error("IsKeyNotFound(other) = true, want false")
	}
}
