// Package store は加入者データと参照カタログへのアクセス層を提供する。
package store

// キープレフィックス定義
const (
	// PrefixSubscriber は加入者キーのプレフィックス
	PrefixSubscriber = "sub:"
	// KeyCatalogAPNs はAPN名のSetキー
	KeyCatalogAPNs = "catalog:apns"
	// KeyCatalogPolicies はポリシールール名のSetキー
	KeyCatalogPolicies = "catalog:policies"
	// KeyCatalogSubProfiles はサブスクライバプロファイル名のSetキー
	KeyCatalogSubProfiles = "catalog:sub_profiles"
)

// SubscriberKey は加入者のValkeyキーを生成する。
func SubscriberKey(id string) string {
	return PrefixSubscriber + id
}
