package config

import (
	"os"
	"testing"
)

// clearEnv はテストに影響する環境変数を削除し、終了時に元へ戻す。
// 空文字を設定するとenvconfigのデフォルト値が適用されないため削除する。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BACKEND", "NMS_API_URL", "NMS_NETWORK_ID", "NMS_CLIENT_CERT", "NMS_CLIENT_KEY",
		"NMS_INSECURE_SKIP_VERIFY", "VALKEY_ADDR", "VALKEY_PASSWORD", "LOG_FILE",
		"LOG_LEVEL", "LOG_MASK_IMSI", "ADMIN_USER",
	} {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("nms backend with required values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NMS_API_URL", "https://nms.example.com")
		t.Setenv("NMS_NETWORK_ID", "lte_test")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Backend != BackendNMS {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendNMS)
		}
		if cfg.UseValkey() {
			t.Error("UseValkey() = true, want false")
		}
		if cfg.LogFile != "subscriber-console.log" {
			t.Errorf("LogFile = %q, want default", cfg.LogFile)
		}
		if cfg.LogLevel != "INFO" {
			t.Errorf("LogLevel = %q, want INFO", cfg.LogLevel)
		}
		if !cfg.LogMaskIMSI {
			t.Error("LogMaskIMSI default should be true")
		}
		if cfg.AdminUser != "admin" {
			t.Errorf("AdminUser = %q, want admin", cfg.AdminUser)
		}
		if cfg.HasClientCert() {
			t.Error("HasClientCert() = true, want false")
		}
	})

	t.Run("nms backend without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NMS_NETWORK_ID", "lte_test")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error when NMS_API_URL is missing")
		}
	})

	t.Run("nms backend with malformed url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NMS_API_URL", "not a url")
		t.Setenv("NMS_NETWORK_ID", "lte_test")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for malformed NMS_API_URL")
		}
	})

	t.Run("client cert without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("NMS_API_URL", "https://nms.example.com")
		t.Setenv("NMS_NETWORK_ID", "lte_test")
		t.Setenv("NMS_CLIENT_CERT", "/etc/nms/admin.crt")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error when NMS_CLIENT_KEY is missing")
		}
	})

	t.Run("valkey backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BACKEND", "valkey")
		t.Setenv("VALKEY_ADDR", "127.0.0.1:6380")
		t.Setenv("VALKEY_PASSWORD", "test_password")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !cfg.UseValkey() {
			t.Error("UseValkey() = false, want true")
		}
		if cfg.ValkeyAddr != "127.0.0.1:6380" {
			t.Errorf("ValkeyAddr = %q", cfg.ValkeyAddr)
		}
		if cfg.ValkeyPassword != "test_password" {
			t.Errorf("ValkeyPassword = %q", cfg.ValkeyPassword)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BACKEND", "postgres")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for unknown backend")
		}
	})
}
