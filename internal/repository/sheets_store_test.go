package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go_5_vocab_flash/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValues はメモリ上の2次元配列でシートを表すテスト用の sheetsValues
type fakeValues struct {
	rows      [][]interface{}
	err       error
	updateErr error
	cleared   []string
	ranges    []string
}

func (f *fakeValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	f.ranges = append(f.ranges, rng)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// Clear は "Vocab!<from>:<to>" の行範囲だけを受け付ける
func (f *fakeValues) Clear(ctx context.Context, spreadsheetID, rng string) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = append(f.cleared, rng)
	var from, to int
	if _, err := fmt.Sscanf(rng, "Vocab!%d:%d", &from, &to); err != nil {
		return err
	}
	if from-1 < len(f.rows) {
		f.rows = f.rows[:from-1]
	}
	return nil
}

// Update は A1 から上書きする (それより下の行は残る)
func (f *fakeValues) Update(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	if f.err != nil {
		return f.err
	}
	if f.updateErr != nil {
		return f.updateErr
	}
	f.ranges = append(f.ranges, rng)
	rows := append([][]interface{}{}, values...)
	if len(f.rows) > len(values) {
		rows = append(rows, f.rows[len(values):]...)
	}
	f.rows = rows
	return nil
}

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"正常系: IDそのまま", "1AbC-xyz_09", "1AbC-xyz_09"},
		{"正常系: 編集URLから抽出", "https://docs.google.com/spreadsheets/d/1AbC-xyz_09/edit#gid=0", "1AbC-xyz_09"},
		{"正常系: 前後の空白を除去", "  1AbC  ", "1AbC"},
		{"正常系: 空文字", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpreadsheetID(tt.target))
		})
	}
}

func TestSheetsRowStore_LoadSave(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 読み込み -> 追加 -> 書き戻し", func(t *testing.T) {
		fake := &fakeValues{rows: [][]interface{}{
			{"word", "meaning", "memo"},
			{"apple", "りんご", "fruit"},
		}}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		entries, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "fruit", entries[0].Extra["memo"])

		entries = append(entries, model.Entry{Word: "run", Meaning: "走る"})
		require.NoError(t, store.Save(ctx, entries))

		assert.Empty(t, fake.cleared)
		assert.Equal(t, "Vocab!A1", fake.ranges[len(fake.ranges)-1])
		assert.Equal(t, [][]interface{}{
			{"word", "meaning", "memo"},
			{"apple", "りんご", "fruit"},
			{"run", "走る", ""},
		}, fake.rows)
	})

	t.Run("正常系: 空のシートへの初回書き込みでヘッダーを作る", func(t *testing.T) {
		fake := &fakeValues{}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		require.NoError(t, store.Save(ctx, []model.Entry{{Word: "cat"}}))
		require.Len(t, fake.rows, 2)
		assert.Equal(t, "word", fake.rows[0][0])
		assert.Equal(t, "cat", fake.rows[1][0])
	})

	t.Run("正常系: 行が減った分だけ下を消す", func(t *testing.T) {
		fake := &fakeValues{rows: [][]interface{}{
			{"word", "meaning"},
			{"apple", "りんご"},
			{"run", "走る"},
			{"cat", "猫"},
		}}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		require.NoError(t, store.Save(ctx, []model.Entry{{Word: "apple", Meaning: "りんご"}}))
		assert.Equal(t, []string{"Vocab!3:4"}, fake.cleared)
		assert.Equal(t, [][]interface{}{
			{"word", "meaning"},
			{"apple", "りんご"},
		}, fake.rows)
	})

	t.Run("正常系: 空のヘッダーと重複したヘッダーの列を書き戻しで失わない", func(t *testing.T) {
		original := [][]interface{}{
			{"word", "", "meaning", "note", "note"},
			{"cat", "my note", "猫", "a", "b"},
		}
		fake := &fakeValues{rows: original}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		entries, err := store.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, entries))
		assert.Equal(t, original, fake.rows)
	})

	t.Run("異常系: 書き込みに失敗しても既存の行は消えない", func(t *testing.T) {
		original := [][]interface{}{
			{"word", "meaning"},
			{"apple", "りんご"},
		}
		fake := &fakeValues{rows: original, updateErr: errors.New("backend error")}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		err := store.Save(ctx, []model.Entry{{Word: "run"}})
		assert.ErrorIs(t, err, model.ErrStore)
		assert.Empty(t, fake.cleared)
		assert.Equal(t, original, fake.rows)
	})

	t.Run("異常系: API エラーは ErrStore", func(t *testing.T) {
		fake := &fakeValues{err: errors.New("quota exceeded")}
		store := newSheetsRowStore(fake, "sheet-id", "Vocab")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, model.ErrStore)
		assert.ErrorContains(t, err, "quota exceeded")

		err = store.Save(ctx, []model.Entry{{Word: "x"}})
		assert.ErrorIs(t, err, model.ErrStore)
	})
}
