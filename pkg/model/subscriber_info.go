package model

// SubscriberInfo は一括登録画面で保持する登録前の加入者情報を表す。
// CSVアップロードまたは手入力で生成され、ダイアログを閉じるか保存に成功すると破棄される。
type SubscriberInfo struct {
	Name     string          `json:"name"`
	IMSI     string          `json:"imsi"`
	AuthKey  string          `json:"auth_key"` // Hex文字列（空文字可）
	AuthOpc  string          `json:"auth_opc"` // Hex文字列（空文字可）
	State    SubscriberState `json:"state"`
	DataPlan string          `json:"data_plan"` // サブスクリプションプロファイル名
	APNs     []string        `json:"apns"`
	Policies []string        `json:"policies"` // 一括登録時のみ使用
}

// StaticIPRow は編集画面のAPN静的IP行を表す。
// IDは行ごとに生成する安定識別子で、削除や並び替えの影響を受けない。
type StaticIPRow struct {
	ID       string `json:"id"`
	APNName  string `json:"apn_name"`
	StaticIP string `json:"static_ip"`
}
