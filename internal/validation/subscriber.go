package validation

import (
	"github.com/oyaguma3/nms-subscriber-console/pkg/keycodec"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// ValidateSubscriberInfo は登録前の加入者情報を検証する。
// 最初に違反したルールのメッセージを返し、問題が無ければ空文字を返す。
// known は永続化済み加入者のIDをキーとするマップ。
//
// 検証順序:
//  1. IMSI形式
//  2. 永続化済み加入者との重複
//  3. Auth Key（空でなければ16進数）
//  4. Auth OPC（空でなければ16進数）
func ValidateSubscriberInfo(info *model.SubscriberInfo, known map[string]*model.Subscriber) string {
	if !IMSIPattern.MatchString(info.IMSI) {
		return MsgIMSIInvalid
	}
	if _, exists := known[info.IMSI]; exists {
		return MsgIMSIExists
	}
	if info.AuthKey != "" && !keycodec.IsValidHex(info.AuthKey) {
		return MsgAuthKeyInvalid
	}
	if info.AuthOpc != "" && !keycodec.IsValidHex(info.AuthOpc) {
		return MsgAuthOpcInvalid
	}
	return ""
}

// ValidateOptionalHex は空でない値が16進数であるかを検証する。
// 不正な場合は msg を返し、空文字または正しい16進数であれば空文字を返す。
func ValidateOptionalHex(value, msg string) string {
	if value != "" && !keycodec.IsValidHex(value) {
		return msg
	}
	return ""
}
