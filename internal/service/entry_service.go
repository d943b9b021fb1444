//go:generate mockery --name EntryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sync"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/repository"
)

// EntryService は RowStore 上の単語帳操作 (全件読み込み -> 変更 -> 全件書き戻し) です。
// 同一プロセス内の読み書きは mutex で直列化する。
type EntryService interface {
	List(ctx context.Context) ([]model.Entry, error)
	Words(ctx context.Context) ([]string, error)
	Find(ctx context.Context, word string) (*model.Entry, error)
	Append(ctx context.Context, entry model.Entry) error
	UpdateFirst(ctx context.Context, word string, form model.EntryForm) (*model.Entry, error)
}

type entryService struct {
	mu    sync.Mutex
	store repository.RowStore
}

func NewEntryService(store repository.RowStore) EntryService {
	return &entryService{store: store}
}

func (s *entryService) List(ctx context.Context) ([]model.Entry, error) {
	return s.store.Load(ctx)
}

// Words は空でない単語を保存順に重複なしで返します。
func (s *entryService) Words(ctx context.Context) ([]string, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Word == "" || seen[e.Word] {
			continue
		}
		seen[e.Word] = true
		words = append(words, e.Word)
	}
	return words, nil
}

// Find は word が一致する最初のレコードを返します。
func (s *entryService) Find(ctx context.Context, word string) (*model.Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfWord(entries, word)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	e := entries[i].Clone()
	return &e, nil
}

// Append は末尾に1件追加して全件を書き戻します。
func (s *entryService) Append(ctx context.Context, entry model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if err := s.store.Save(ctx, entries); err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Entry appended", "word", entry.Word, "total", len(entries))
	return nil
}

// UpdateFirst は word が一致する最初のレコードをフォームの値で上書きします。
// 追加列は維持する。見つからなければ ErrNotFound。
func (s *entryService) UpdateFirst(ctx context.Context, word string, form model.EntryForm) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfWord(entries, word)
	if i < 0 {
		return nil, model.ErrNotFound
	}
	entries[i] = entries[i].WithFields(form)
	if err := s.store.Save(ctx, entries); err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Entry updated", "target", word, "word", form.Word, "position", i)
	updated := entries[i].Clone()
	return &updated, nil
}

func indexOfWord(entries []model.Entry, word string) int {
	if word == "" {
		return -1
	}
	for i, e := range entries {
		if e.Word == word {
			return i
		}
	}
	return -1
}
