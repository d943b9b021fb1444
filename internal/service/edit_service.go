//go:generate mockery --name EditService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_vocab_flash/internal/model"
)

// EditService は既存の単語の編集 (選択 -> 再生成 -> 保存) を扱います。
type EditService interface {
	Words(ctx context.Context) ([]string, error)
	Select(ctx context.Context, sess *model.Session, word string) error
	Regenerate(ctx context.Context, sess *model.Session) error
	Save(ctx context.Context, sess *model.Session, form model.EntryForm) (*model.Entry, error)
}

type editService struct {
	generator GenerationService
	entries   EntryService
}

func NewEditService(generator GenerationService, entries EntryService) EditService {
	return &editService{generator: generator, entries: entries}
}

func (s *editService) Words(ctx context.Context) ([]string, error) {
	return s.entries.Words(ctx)
}

// Select は対象が変わったときだけ保存済みの値でフォームを作り直します。
// 同じ対象を選び直しても編集中の値は維持する。
func (s *editService) Select(ctx context.Context, sess *model.Session, word string) error {
	if word == "" {
		sess.Edit.Reset()
		return nil
	}
	if sess.Edit.Loaded && sess.Edit.Target == word {
		return nil
	}

	entry, err := s.entries.Find(ctx, word)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			sess.Edit.Reset()
		}
		return err
	}
	sess.Edit.Target = word
	sess.Edit.Fields = model.FormFromEntry(*entry)
	sess.Edit.Loaded = true
	return nil
}

// Regenerate は対象の単語を再生成し、word 以外のフィールドを置き換えます。
func (s *editService) Regenerate(ctx context.Context, sess *model.Session) error {
	if !sess.Edit.Loaded {
		return model.NewAppError("EDIT_NOT_SELECTED", "編集する単語を選択してください。", "word", model.ErrInvalidInput)
	}

	entry, err := s.generator.Generate(ctx, model.ModeRefresh, sess.Edit.Target)
	if err != nil {
		return err
	}
	generated := model.FormFromEntry(*entry)
	generated.Word = sess.Edit.Fields.Word
	sess.Edit.Fields = generated
	return nil
}

// Save は対象の最初のレコードを上書きし、編集状態を初期化します。
func (s *editService) Save(ctx context.Context, sess *model.Session, form model.EntryForm) (*model.Entry, error) {
	if !sess.Edit.Loaded {
		return nil, model.NewAppError("EDIT_NOT_SELECTED", "編集する単語を選択してください。", "word", model.ErrInvalidInput)
	}

	updated, err := s.entries.UpdateFirst(ctx, sess.Edit.Target, form)
	if err != nil {
		// 入力した値は失わない
		sess.Edit.Fields = form
		if errors.Is(err, model.ErrNotFound) {
			sess.Edit.Reset()
		}
		return nil, err
	}
	sess.Edit.Reset()
	return updated, nil
}
