//go:generate mockery --name DraftService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_vocab_flash/internal/model"
)

// DraftService は生成 -> 編集 -> 確定 (追加) の流れを扱います。
// 状態はすべて引数のセッションに持つ。
type DraftService interface {
	Generate(ctx context.Context, sess *model.Session, mode model.GenerationMode, seed string) error
	PendingForm(sess *model.Session) (model.EntryForm, bool)
	Confirm(ctx context.Context, sess *model.Session, form model.EntryForm) (*model.Entry, error)
	Cancel(sess *model.Session)
}

type draftService struct {
	generator GenerationService
	entries   EntryService
}

func NewDraftService(generator GenerationService, entries EntryService) DraftService {
	return &draftService{generator: generator, entries: entries}
}

// Generate は成功時のみ保留中の項目を置き換えます。失敗時は以前の状態のまま。
func (s *draftService) Generate(ctx context.Context, sess *model.Session, mode model.GenerationMode, seed string) error {
	entry, err := s.generator.Generate(ctx, mode, seed)
	if err != nil {
		return err
	}
	sess.Mode = mode
	sess.Pending = entry
	return nil
}

func (s *draftService) PendingForm(sess *model.Session) (model.EntryForm, bool) {
	if sess.Pending == nil {
		return model.EntryForm{}, false
	}
	return model.FormFromEntry(*sess.Pending), true
}

// Confirm はフォームの値 (空欄可) で1件追加し、保留中の項目を破棄します。
// 保存に失敗した場合は保留中の項目を残す。
func (s *draftService) Confirm(ctx context.Context, sess *model.Session, form model.EntryForm) (*model.Entry, error) {
	if sess.Pending == nil {
		return nil, model.ErrNoPendingEntry
	}
	entry := form.ToEntry()
	if err := s.entries.Append(ctx, entry); err != nil {
		return nil, err
	}
	sess.Pending = nil
	return &entry, nil
}

func (s *draftService) Cancel(sess *model.Session) {
	sess.Pending = nil
}
