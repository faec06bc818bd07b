package store

import (
	"context"

	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// Backend は加入者データと参照カタログの永続化先を定義する。
// NMS APIクライアントとValkeyBackendが実装する。
type Backend interface {
	// ListSubscribers は全加入者をIDをキーとするマップで返す
	ListSubscribers(ctx context.Context) (map[string]*model.Subscriber, error)
	// GetSubscriber は加入者を1件返す。存在しない場合はapperr.ErrSubscriberNotFoundを含むエラー
	GetSubscriber(ctx context.Context, id string) (*model.Subscriber, error)
	// CreateSubscriber は加入者を新規登録する
	CreateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error
	// UpdateSubscriber は既存の加入者を上書き更新する
	UpdateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error
	// ListAPNs はAPN名の一覧を返す
	ListAPNs(ctx context.Context) ([]string, error)
	// ListPolicyRules はポリシールール名の一覧を返す
	ListPolicyRules(ctx context.Context) ([]string, error)
	// ListSubProfiles はサブスクライバプロファイル名の一覧を返す
	ListSubProfiles(ctx context.Context) ([]string, error)
}
