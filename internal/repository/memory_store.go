package repository

import (
	"context"
	"sync"

	"go_5_vocab_flash/internal/model"
)

// memoryRowStore はプロセス内のスライスに保持する RowStore です (開発・テスト用)。
type memoryRowStore struct {
	mu      sync.RWMutex
	entries []model.Entry
}

func NewMemoryRowStore(initial []model.Entry) RowStore {
	return &memoryRowStore{entries: cloneEntries(initial)}
}

func (m *memoryRowStore) Load(ctx context.Context) ([]model.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneEntries(m.entries), nil
}

func (m *memoryRowStore) Save(ctx context.Context, entries []model.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = cloneEntries(entries)
	return nil
}

func cloneEntries(src []model.Entry) []model.Entry {
	dst := make([]model.Entry, len(src))
	for i, e := range src {
		dst[i] = e.Clone()
	}
	return dst
}
