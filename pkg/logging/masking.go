// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// imsiPrefix は加入者IDに付与されるIMSIプレフィックス
const imsiPrefix = "IMSI"

// MaskIMSI はIMSIをマスキングする。
// 先頭6桁 + マスク + 末尾1桁。"IMSI"プレフィックスはそのまま残す。
// 例: IMSI001010123456789 → IMSI001010********9
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskIMSI(imsi string, enabled bool) string {
	if !enabled {
		return imsi
	}
	if digits, ok := strings.CutPrefix(imsi, imsiPrefix); ok {
		return imsiPrefix + MaskPartial(digits, 6, 1, '*')
	}
	return MaskPartial(imsi, 6, 1, '*')
}

// MaskSecret は認証鍵などの秘匿値を完全にマスキングする。
// 空文字の場合は空文字を返す（未設定と区別するため）。
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)
	copy(result, runes[:keepPrefix])
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	copy(result[length-keepSuffix:], runes[length-keepSuffix:])

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// IMSI はIMSIをマスキングする。
func (m *Masker) IMSI(imsi string) string {
	return MaskIMSI(imsi, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
