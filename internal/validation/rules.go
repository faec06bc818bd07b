// Package validation はバリデーションルールを提供する。
package validation

import "regexp"

// バリデーション正規表現
var (
	// IMSIPattern は加入者ID形式（"IMSI" + 10〜15桁の数字）
	IMSIPattern = regexp.MustCompile(`^(IMSI\d{10,15})$`)
)

// バリデーションエラーメッセージ（画面にそのまま表示する）
const (
	// MsgIMSIInvalid はIMSI形式不正
	// 文言中のパターンは `\d` が欠落しているが、表示文言としてそのまま維持する。
	MsgIMSIInvalid = "imsi invalid, should match '^(IMSId{10,15})$'"
	// MsgIMSIExists はIMSI重複
	MsgIMSIExists = "imsi already exists"
	// MsgAuthKeyInvalid はAuth Keyが16進数でない
	MsgAuthKeyInvalid = "auth key is not a valid hex"
	// MsgAuthOpcInvalid はAuth OPCが16進数でない
	MsgAuthOpcInvalid = "auth opc is not a valid hex"
)

// 編集画面の保存時メッセージ（末尾の空白を含めて既存文言どおり）
const (
	MsgEditAuthOpcInvalid = "auth_opc is not a valid hex "
	MsgEditAuthKeyInvalid = "auth_key is not a valid hex "
)
