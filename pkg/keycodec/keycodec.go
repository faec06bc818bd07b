// Package keycodec は認証鍵（Auth Key/OPC）の表示形式（Hex）と保存形式（Base64）の変換を提供する。
package keycodec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
)

// hexPattern は16進数文字列（空文字を除く）
var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// IsValidHex は文字列がバイト列として解釈可能な16進数かどうかを判定する。
// 空文字および奇数長は不正とする。
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s) && len(s)%2 == 0
}

// HexToBase64 はHex文字列をBase64文字列に変換する。
func HexToBase64(s string) (string, error) {
	if !IsValidHex(s) {
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidHex, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvalidHex, err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Base64ToHex はBase64文字列を小文字のHex文字列に変換する。
func Base64ToHex(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvalidBase64, err)
	}
	return hex.EncodeToString(b), nil
}
