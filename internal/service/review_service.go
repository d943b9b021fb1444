//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"go_5_vocab_flash/internal/model"
)

// ReviewService は復習用の一覧を作ります。
type ReviewService interface {
	Render(ctx context.Context, query model.ReviewQuery) ([]model.ReviewRow, error)
}

type reviewService struct {
	entries      EntryService
	audioEnabled bool
}

func NewReviewService(entries EntryService, audioEnabled bool) ReviewService {
	return &reviewService{entries: entries, audioEnabled: audioEnabled}
}

// Render は新しい順 (保存順の逆) に一覧を返します。
// word が空の行は飛ばす。検索は word と meaning の両方に大文字小文字を区別せず部分一致。
func (s *reviewService) Render(ctx context.Context, query model.ReviewQuery) ([]model.ReviewRow, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	rows := make([]model.ReviewRow, 0, len(entries))

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Word == "" {
			continue
		}
		if !matchesSearch(e, needle) {
			continue
		}

		row := model.ReviewRow{
			Index:     i,
			Word:      e.Word,
			ExampleEN: e.ExampleEN,
			CanPlay:   s.audioEnabled,

			HasTranslation: e.ExampleJA != "",
		}
		if query.RevealAll || query.Revealed[row.MeaningKey()] {
			row.ShowMeaning = true
			row.Meaning = e.Meaning
			row.Phonetic = e.Phonetic
			row.Synonyms = e.Synonyms
		}
		if query.RevealAll || query.Revealed[row.TranslationKey()] {
			row.ShowTranslation = true
			row.ExampleJA = e.ExampleJA
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func matchesSearch(e model.Entry, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Word), needle) ||
		strings.Contains(strings.ToLower(e.Meaning), needle)
}
