package nms

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はNMS APIからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from nms api")
)

// APIError はHTTP APIエラーを表す
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nms api error: %d %s", e.StatusCode, e.Message)
}

// Is はapperr.ErrNMSAPIとの比較を可能にする
func (e *APIError) Is(target error) bool {
	return target == apperr.ErrNMSAPI
}

// DisplayMessage は画面に表示するメッセージ（レスポンスボディのmessage）を返す
func (e *APIError) DisplayMessage() string {
	return e.Message
}

// IsNotFound は対象リソースが存在しないエラーかどうかを判定する
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest はリクエスト不正エラーかどうかを判定する
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
