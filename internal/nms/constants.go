package nms

// HTTPヘッダ名
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
)

// APIパス（%s はURLエスケープ済みのネットワークID、加入者ID）
const (
	pathSubscribers = "/magma/v1/lte/%s/subscribers"
	pathSubscriber  = "/magma/v1/lte/%s/subscribers/%s"
	pathAPNs        = "/magma/v1/lte/%s/apns"
	pathPolicyRules = "/magma/v1/networks/%s/policies/rules"
	pathCellularEPC = "/magma/v1/lte/%s/cellular/epc"
)

// 操作名（ログ出力用）
const (
	opListSubscribers  = "list_subscribers"
	opGetSubscriber    = "get_subscriber"
	opCreateSubscriber = "create_subscriber"
	opUpdateSubscriber = "update_subscriber"
	opListAPNs         = "list_apns"
	opListPolicyRules  = "list_policy_rules"
	opListSubProfiles  = "list_sub_profiles"
)
