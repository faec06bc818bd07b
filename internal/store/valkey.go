package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/redis/go-redis/v9"
)

var _ Backend = (*ValkeyBackend)(nil)

// ValkeyBackend はValkeyを永続化先とするBackendの実装。
// 加入者は sub:{id} にJSON文字列として保存し、カタログはSetで保持する。
type ValkeyBackend struct {
	client *redis.Client
}

// NewValkeyBackend は新しいValkeyBackendを生成する。
func NewValkeyBackend(client *redis.Client) *ValkeyBackend {
	return &ValkeyBackend{client: client}
}

// ListSubscribers は全加入者を取得する（SCAN使用）。
func (b *ValkeyBackend) ListSubscribers(ctx context.Context) (map[string]*model.Subscriber, error) {
	var keys []string

	iter := b.client.Scan(ctx, 0, PrefixSubscriber+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, apperr.NewValkeyError("SCAN", PrefixSubscriber+"*", err)
	}

	subscribers := make(map[string]*model.Subscriber, len(keys))
	if len(keys) == 0 {
		return subscribers, nil
	}

	// Pipelineで一括取得（GET）
	pipe := b.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, apperr.NewValkeyError("GET", PrefixSubscriber+"*", err)
	}

	for i, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			// SCANとGETの間に削除されたキー
			continue
		}
		sub, err := decodeSubscriber(keys[i], data)
		if err != nil {
			return nil, err
		}
		subscribers[sub.ID] = sub
	}

	return subscribers, nil
}

// GetSubscriber は指定されたIDの加入者を取得する。
func (b *ValkeyBackend) GetSubscriber(ctx context.Context, id string) (*model.Subscriber, error) {
	key := SubscriberKey(id)
	data, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrSubscriberNotFound, id)
		}
		return nil, apperr.NewValkeyError("GET", key, err)
	}
	return decodeSubscriber(key, data)
}

// CreateSubscriber は新しい加入者を作成する。
// 既に存在する場合はapperr.ErrSubscriberExistsを返す。
func (b *ValkeyBackend) CreateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error {
	key := SubscriberKey(sub.ID)
	data, err := json.Marshal(sub.ToSubscriber())
	if err != nil {
		return fmt.Errorf("failed to encode subscriber: %w", err)
	}

	ok, err := b.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return apperr.NewValkeyError("SETNX", key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", apperr.ErrSubscriberExists, sub.ID)
	}
	return nil
}

// UpdateSubscriber は既存の加入者を上書きする。
// 存在しない場合はapperr.ErrSubscriberNotFoundを返す。
func (b *ValkeyBackend) UpdateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error {
	key := SubscriberKey(sub.ID)
	data, err := json.Marshal(sub.ToSubscriber())
	if err != nil {
		return fmt.Errorf("failed to encode subscriber: %w", err)
	}

	ok, err := b.client.SetXX(ctx, key, data, 0).Result()
	if err != nil {
		return apperr.NewValkeyError("SETXX", key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", apperr.ErrSubscriberNotFound, sub.ID)
	}
	return nil
}

// ListAPNs はAPN名の一覧を返す。
func (b *ValkeyBackend) ListAPNs(ctx context.Context) ([]string, error) {
	return b.members(ctx, KeyCatalogAPNs)
}

// ListPolicyRules はポリシールール名の一覧を返す。
func (b *ValkeyBackend) ListPolicyRules(ctx context.Context) ([]string, error) {
	return b.members(ctx, KeyCatalogPolicies)
}

// ListSubProfiles はサブスクライバプロファイル名の一覧を返す。
func (b *ValkeyBackend) ListSubProfiles(ctx context.Context) ([]string, error) {
	return b.members(ctx, KeyCatalogSubProfiles)
}

func (b *ValkeyBackend) members(ctx context.Context, key string) ([]string, error) {
	names, err := b.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, apperr.NewValkeyError("SMEMBERS", key, err)
	}
	slices.Sort(names)
	return names, nil
}

func decodeSubscriber(key, data string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := json.Unmarshal([]byte(data), &sub); err != nil {
		return nil, apperr.NewValkeyError("DECODE", key, err)
	}
	if sub.ID == "" {
		sub.ID = strings.TrimPrefix(key, PrefixSubscriber)
	}
	return &sub, nil
}
