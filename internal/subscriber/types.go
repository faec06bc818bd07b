package subscriber

import "github.com/oyaguma3/nms-subscriber-console/pkg/model"

// Variant は通知の種別を表す。
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// EditTable は編集ダイアログのタブを表す。
type EditTable int

const (
	// EditTableSubscriber は加入者情報タブ
	EditTableSubscriber EditTable = iota
	// EditTableTrafficPolicy はトラフィックポリシータブ
	EditTableTrafficPolicy
	// EditTableStaticIPs は静的IPタブ
	EditTableStaticIPs
)

var editTableNames = map[EditTable]string{
	EditTableSubscriber:    "subscriber",
	EditTableTrafficPolicy: "trafficPolicy",
	EditTableStaticIPs:     "staticIps",
}

func (t EditTable) String() string {
	if name, ok := editTableNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEditTable は名前からEditTableを返す。
// 不明な名前の場合は加入者情報タブとfalseを返す。
func ParseEditTable(s string) (EditTable, bool) {
	for t, name := range editTableNames {
		if name == s {
			return t, true
		}
	}
	return EditTableSubscriber, false
}

// StagedRow は一括登録の登録待ち行。
// IDは行の識別用に生成したもので、加入者IDとは無関係。
type StagedRow struct {
	ID   string
	Info *model.SubscriberInfo
}
