// Package model は共通データ構造体を提供する。
package model

import "maps"

// AuthAlgoMilenage は一括登録時に固定で設定する認証アルゴリズム
const AuthAlgoMilenage = "MILENAGE"

// SubscriberState は加入者のサービス状態を表す。
type SubscriberState string

const (
	// StateActive はサービス有効
	StateActive SubscriberState = "ACTIVE"
	// StateInactive はサービス無効
	StateInactive SubscriberState = "INACTIVE"
)

// ParseSubscriberState は文字列をSubscriberStateに変換する。
// "ACTIVE" と完全一致した場合のみACTIVE、それ以外（大文字小文字違いを含む）はINACTIVE。
func ParseSubscriberState(s string) SubscriberState {
	if s == string(StateActive) {
		return StateActive
	}
	return StateInactive
}

// LteSubscription は加入者のLTE認証情報を表す。
// AuthKey/AuthOpcはBase64形式で保持する。
type LteSubscription struct {
	AuthAlgo   string          `json:"auth_algo"`
	AuthKey    string          `json:"auth_key"`
	AuthOpc    *string         `json:"auth_opc,omitempty"` // 未設定の場合はnil
	State      SubscriberState `json:"state"`
	SubProfile string          `json:"sub_profile"`
}

// SubscriberConfig はAPIが返す加入者の設定ビュー（読み取り専用）。
type SubscriberConfig struct {
	Lte       *LteSubscription  `json:"lte,omitempty"`
	StaticIPs map[string]string `json:"static_ips,omitempty"` // APN名 → 静的IP
}

// Subscriber は永続化済みの加入者レコードを表す。
// Valkeyキー: sub:{ID}
type Subscriber struct {
	ID              string            `json:"id"` // "IMSI" + 10〜15桁
	Name            string            `json:"name"`
	Lte             LteSubscription   `json:"lte"`
	ActiveAPNs      []string          `json:"active_apns,omitempty"`
	ActivePolicies  []string          `json:"active_policies,omitempty"`
	ActiveBaseNames []string          `json:"active_base_names,omitempty"`
	StaticIPs       map[string]string `json:"static_ips,omitempty"`
	Config          *SubscriberConfig `json:"config,omitempty"`
}

// MutableSubscriber は書き込み用のペイロード（configを除いた加入者）。
type MutableSubscriber struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Lte             LteSubscription   `json:"lte"`
	ActiveAPNs      []string          `json:"active_apns,omitempty"`
	ActivePolicies  []string          `json:"active_policies,omitempty"`
	ActiveBaseNames []string          `json:"active_base_names,omitempty"`
	StaticIPs       map[string]string `json:"static_ips,omitempty"`
}

// ConfigStaticIPs は設定ビューのAPN→静的IPマッピングを返す。
// configが無い場合はトップレベルの値を返す。
func (s *Subscriber) ConfigStaticIPs() map[string]string {
	if s.Config != nil && s.Config.StaticIPs != nil {
		return s.Config.StaticIPs
	}
	return s.StaticIPs
}

// Clone は加入者のディープコピーを作成する。
func (s *Subscriber) Clone() *Subscriber {
	clone := *s
	clone.Lte = cloneLte(s.Lte)
	clone.ActiveAPNs = cloneStrings(s.ActiveAPNs)
	clone.ActivePolicies = cloneStrings(s.ActivePolicies)
	clone.ActiveBaseNames = cloneStrings(s.ActiveBaseNames)
	clone.StaticIPs = maps.Clone(s.StaticIPs)
	if s.Config != nil {
		cfg := &SubscriberConfig{StaticIPs: maps.Clone(s.Config.StaticIPs)}
		if s.Config.Lte != nil {
			lte := cloneLte(*s.Config.Lte)
			cfg.Lte = &lte
		}
		clone.Config = cfg
	}
	return &clone
}

// Mutable はconfigを除いた書き込み用ペイロードを返す。
func (s *Subscriber) Mutable() *MutableSubscriber {
	return &MutableSubscriber{
		ID:              s.ID,
		Name:            s.Name,
		Lte:             cloneLte(s.Lte),
		ActiveAPNs:      cloneStrings(s.ActiveAPNs),
		ActivePolicies:  cloneStrings(s.ActivePolicies),
		ActiveBaseNames: cloneStrings(s.ActiveBaseNames),
		StaticIPs:       maps.Clone(s.StaticIPs),
	}
}

// ToSubscriber は書き込みペイロードから加入者レコードを組み立てる。
// 書き込み成功後にローカルの状態を更新するために使用する。
func (m *MutableSubscriber) ToSubscriber() *Subscriber {
	sub := &Subscriber{
		ID:              m.ID,
		Name:            m.Name,
		Lte:             cloneLte(m.Lte),
		ActiveAPNs:      cloneStrings(m.ActiveAPNs),
		ActivePolicies:  cloneStrings(m.ActivePolicies),
		ActiveBaseNames: cloneStrings(m.ActiveBaseNames),
		StaticIPs:       maps.Clone(m.StaticIPs),
	}
	lte := cloneLte(m.Lte)
	sub.Config = &SubscriberConfig{Lte: &lte, StaticIPs: maps.Clone(m.StaticIPs)}
	return sub
}

func cloneLte(l LteSubscription) LteSubscription {
	if l.AuthOpc != nil {
		opc := *l.AuthOpc
		l.AuthOpc = &opc
	}
	return l
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
