// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// 加入者関連エラー
var (
	// ErrSubscriberNotFound は加入者が見つからない場合のエラー
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrSubscriberExists は加入者が既に存在する場合のエラー
	ErrSubscriberExists = errors.New("subscriber already exists")
)

// アップロード関連エラー
var (
	// ErrFileTooLarge はアップロードサイズ上限超過エラー
	ErrFileTooLarge = errors.New("file size exceeds max upload size of 10MB, please upload smaller file")
	// ErrMalformedLine はCSV行の列数不正エラー
	ErrMalformedLine = errors.New("malformed line")
)

// 変換関連エラー
var (
	// ErrInvalidHex は不正な16進数文字列エラー
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrInvalidBase64 は不正なBase64文字列エラー
	ErrInvalidBase64 = errors.New("invalid base64 string")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
	// ErrNMSAPI はNMS APIエラー
	ErrNMSAPI = errors.New("NMS API error")
)
