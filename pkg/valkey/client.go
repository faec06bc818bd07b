// Package valkey はValkeyクライアントの生成を提供する。
package valkey

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
	"github.com/redis/go-redis/v9"
)

// Options はValkeyクライアントの接続オプション。
type Options struct {
	Addr     string        // 接続先アドレス（host:port形式）
	Password string        // 認証パスワード
	DB       int           // データベース番号
	Timeout  time.Duration // 接続・読み取り・書き込み共通タイムアウト
	PoolSize int           // コネクションプールサイズ
}

// ConsoleOptions はコンソール向けのOptionsを返す。
// 操作は逐次的なためプールは小さく、タイムアウトは対話向けに5秒とする。
func ConsoleOptions(addr, password string) *Options {
	return &Options{
		Addr:     addr,
		Password: password,
		Timeout:  5 * time.Second,
		PoolSize: 2,
	}
}

// NewClient は新しいValkeyクライアントを生成し、PINGで接続を確認する。
func NewClient(ctx context.Context, opts *Options) (*redis.Client, error) {
	if opts == nil {
		return nil, errors.New("valkey options must not be nil")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.Timeout,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
		PoolSize:     opts.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		if IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %s: %v", apperr.ErrValkeyConnection, opts.Addr, err)
		}
		return nil, err
	}

	return client, nil
}

// IsConnectionError は接続関連のエラーかどうかを判定する。
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsKeyNotFound はキーが見つからないエラーかどうかを判定する。
func IsKeyNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
