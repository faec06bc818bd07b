// Package config は加入者管理コンソールの設定管理を提供する。
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// バックエンド種別
const (
	BackendNMS    = "nms"
	BackendValkey = "valkey"
)

// Config はコンソールの設定を保持する
type Config struct {
	// 永続化バックエンド（nms または valkey）
	Backend string `envconfig:"BACKEND" default:"nms" validate:"oneof=nms valkey"`

	// NMS API設定
	NMSAPIURL          string `envconfig:"NMS_API_URL" validate:"required_if=Backend nms,omitempty,url"`
	NMSNetworkID       string `envconfig:"NMS_NETWORK_ID" validate:"required_if=Backend nms"`
	NMSClientCert      string `envconfig:"NMS_CLIENT_CERT" validate:"required_with=NMSClientKey"`
	NMSClientKey       string `envconfig:"NMS_CLIENT_KEY" validate:"required_with=NMSClientCert"`
	InsecureSkipVerify bool   `envconfig:"NMS_INSECURE_SKIP_VERIFY" default:"false"`

	// Valkey接続設定
	ValkeyAddr     string `envconfig:"VALKEY_ADDR" default:"127.0.0.1:6379" validate:"required_if=Backend valkey,omitempty,hostname_port"`
	ValkeyPassword string `envconfig:"VALKEY_PASSWORD"`

	// ログ設定
	LogFile     string `envconfig:"LOG_FILE" default:"subscriber-console.log" validate:"required"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`

	// 監査ログに記録する管理者名
	AdminUser string `envconfig:"ADMIN_USER" default:"admin" validate:"required"`
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込む。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// UseValkey はValkeyバックエンドを使用するかどうかを返す
func (c *Config) UseValkey() bool {
	return c.Backend == BackendValkey
}

// HasClientCert はNMS API用のクライアント証明書が設定されているかを返す
func (c *Config) HasClientCert() bool {
	return c.NMSClientCert != "" && c.NMSClientKey != ""
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
