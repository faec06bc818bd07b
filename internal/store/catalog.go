package store

import (
	"context"
	"fmt"
	"slices"
)

// DefaultName はデータプランとポリシーの選択肢に常に含める名前
const DefaultName = "default"

// Catalog はAPN・ポリシー・サブスクライバプロファイルの参照用一覧を提供する。
type Catalog struct {
	backend Backend
}

// NewCatalog は新しいCatalogを生成する。
func NewCatalog(backend Backend) *Catalog {
	return &Catalog{backend: backend}
}

// APNs はAPN名の一覧を昇順で返す。
func (c *Catalog) APNs(ctx context.Context) ([]string, error) {
	names, err := c.backend.ListAPNs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list apns: %w", err)
	}
	return normalize(names), nil
}

// Policies はポリシールール名の一覧を昇順で返す。defaultを必ず含む。
func (c *Catalog) Policies(ctx context.Context) ([]string, error) {
	names, err := c.backend.ListPolicyRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy rules: %w", err)
	}
	return normalize(append(names, DefaultName)), nil
}

// SubProfiles はサブスクライバプロファイル名の一覧を昇順で返す。defaultを必ず含む。
func (c *Catalog) SubProfiles(ctx context.Context) ([]string, error) {
	names, err := c.backend.ListSubProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub profiles: %w", err)
	}
	return normalize(append(names, DefaultName)), nil
}

// normalize は空文字を除き、重複を取り除いて昇順に並べる。
func normalize(names []string) []string {
	result := slices.DeleteFunc(slices.Clone(names), func(s string) bool { return s == "" })
	slices.Sort(result)
	return slices.Compact(result)
}
