package nms

import "encoding/json"

// cellularEPC はcellular/epcレスポンスのうち参照するフィールドのみを表す
type cellularEPC struct {
	SubProfiles map[string]json.RawMessage `json:"sub_profiles"`
}

// request はAPI呼び出し1回分の情報
type request struct {
	op     string
	method string
	path   string
	imsi   string // ログ出力用（空の場合は出力しない）
	body   any
}
