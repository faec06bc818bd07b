// Package subscriber は加入者の一括登録と編集のワークフローを提供する。
package subscriber

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=subscriber

import (
	"context"

	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// Repository は永続化済み加入者へのアクセスのインターフェース。
type Repository interface {
	// Read は加入者を1件取得する
	Read(ctx context.Context, id string) (*model.Subscriber, error)
	// Write は加入者を永続化する。失敗時はバックエンドのエラーを返す
	Write(ctx context.Context, id string, sub *model.MutableSubscriber) error
	// Known は永続化済み加入者のスナップショットをIDをキーとするマップで返す
	Known() map[string]*model.Subscriber
}

// Notifier は利用者への一時的な通知のインターフェース。
type Notifier interface {
	Notify(message string, variant Variant)
}

// AuditLogger は監査ログ出力のインターフェース。
type AuditLogger interface {
	LogCreate(imsi string)
	LogUpdate(imsi string)
	LogImport(filename string, count int)
}
