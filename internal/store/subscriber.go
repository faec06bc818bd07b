package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// SubscriberStore はBackend上の加入者データをメモリに保持し、読み書きを提供する。
// TUIのイベントループと読み込み用goroutineの双方から呼ばれるため排他制御する。
type SubscriberStore struct {
	backend Backend

	mu   sync.RWMutex
	subs map[string]*model.Subscriber
}

// NewSubscriberStore は新しいSubscriberStoreを生成する。
func NewSubscriberStore(backend Backend) *SubscriberStore {
	return &SubscriberStore{
		backend: backend,
		subs:    map[string]*model.Subscriber{},
	}
}

// Load はBackendから全加入者を読み込み、保持しているマップを置き換える。
func (s *SubscriberStore) Load(ctx context.Context) error {
	subs, err := s.backend.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load subscribers: %w", err)
	}
	if subs == nil {
		subs = map[string]*model.Subscriber{}
	}

	s.mu.Lock()
	s.subs = subs
	s.mu.Unlock()
	return nil
}

// Known は永続化済み加入者のスナップショットを返す。
// 返却したマップへの変更はストアに影響しない。
func (s *SubscriberStore) Known() map[string]*model.Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()

	known := make(map[string]*model.Subscriber, len(s.subs))
	for id, sub := range s.subs {
		known[id] = sub.Clone()
	}
	return known
}

// List はID順に並べた加入者一覧を返す。
func (s *SubscriberStore) List() []*model.Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*model.Subscriber, 0, len(s.subs))
	for _, id := range slices.Sorted(maps.Keys(s.subs)) {
		list = append(list, s.subs[id].Clone())
	}
	return list
}

// Read は指定されたIDの加入者を返す。
// メモリに無い場合はBackendから取得して保持する。
func (s *SubscriberStore) Read(ctx context.Context, id string) (*model.Subscriber, error) {
	s.mu.RLock()
	sub, ok := s.subs[id]
	s.mu.RUnlock()
	if ok {
		return sub.Clone(), nil
	}

	sub, err := s.backend.GetSubscriber(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.subs[id] = sub
	s.mu.Unlock()
	return sub.Clone(), nil
}

// Write は加入者を永続化する。
// 未登録のIDは新規作成、登録済みのIDは上書き更新とし、成功後にメモリ上の値を更新する。
func (s *SubscriberStore) Write(ctx context.Context, id string, patch *model.MutableSubscriber) error {
	payload := *patch
	payload.ID = id

	s.mu.RLock()
	_, exists := s.subs[id]
	s.mu.RUnlock()

	var err error
	if exists {
		err = s.backend.UpdateSubscriber(ctx, &payload)
	} else {
		err = s.backend.CreateSubscriber(ctx, &payload)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.subs[id] = payload.ToSubscriber()
	s.mu.Unlock()
	return nil
}
