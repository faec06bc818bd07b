// Package subscriber は加入者の一覧・一括登録・編集・エクスポート画面を提供する。
package subscriber

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oyaguma3/nms-subscriber-console/internal/store"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// CatalogReader はダイアログの選択肢を提供するカタログのインターフェース。
type CatalogReader interface {
	APNs(ctx context.Context) ([]string, error)
	Policies(ctx context.Context) ([]string, error)
	SubProfiles(ctx context.Context) ([]string, error)
}

var _ CatalogReader = (*store.Catalog)(nil)

// Choices はダイアログで選択できるAPN・ポリシー・データプラン。
type Choices struct {
	APNs      []string
	Policies  []string
	DataPlans []string
	States    []model.SubscriberState
}

// LoadChoices はカタログから選択肢を読み込む。
// 読み込みに失敗したカタログは既定値のみとし、エラーはまとめて返す。
func LoadChoices(ctx context.Context, catalog CatalogReader) (*Choices, error) {
	c := &Choices{
		APNs:      []string{},
		Policies:  []string{store.DefaultName},
		DataPlans: []string{store.DefaultName},
		States:    []model.SubscriberState{model.StateActive, model.StateInactive},
	}

	var errs []error
	if apns, err := catalog.APNs(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to load apns: %w", err))
	} else {
		c.APNs = apns
	}
	if policies, err := catalog.Policies(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to load policies: %w", err))
	} else {
		c.Policies = policies
	}
	if profiles, err := catalog.SubProfiles(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to load sub profiles: %w", err))
	} else {
		c.DataPlans = profiles
	}
	return c, errors.Join(errs...)
}

// stateOptions はサービス状態の表示名を返す。
func (c *Choices) stateOptions() []string {
	opts := make([]string, 0, len(c.States))
	for _, s := range c.States {
		opts = append(opts, string(s))
	}
	return opts
}

// withCurrent は現在値が選択肢に無い場合に末尾へ加えた選択肢と、その位置を返す。
// 現在値が空の場合は先頭を選択する。
func withCurrent(options []string, current string) ([]string, int) {
	if current == "" {
		return options, 0
	}
	if idx := slices.Index(options, current); idx >= 0 {
		return options, idx
	}
	opts := append(slices.Clone(options), current)
	return opts, len(opts) - 1
}
