package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"

	"gorm.io/gorm"
)

// VocabularyRow は vocabulary_rows テーブルの1行です。
// Position が保存順 (スプレッドシートの行順) を表す。
type VocabularyRow struct {
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	Word      string `gorm:"not null;default:''"`
	Meaning   string `gorm:"not null;default:''"`
	Phonetic  string `gorm:"not null;default:''"`
	ExampleEN string `gorm:"column:example_en;not null;default:''"`
	ExampleJA string `gorm:"column:example_ja;not null;default:''"`
	Synonyms  string `gorm:"not null;default:''"`
	Extra     string `gorm:"not null;default:''"` // 追加列 (JSON)
}

func (VocabularyRow) TableName() string {
	return "vocabulary_rows"
}

type gormRowStore struct {
	db *gorm.DB
}

// NewGormRowStore は GORM (SQLite/PostgreSQL) を使う RowStore を作成します。
func NewGormRowStore(db *gorm.DB) (RowStore, error) {
	if err := db.AutoMigrate(&VocabularyRow{}); err != nil {
		return nil, fmt.Errorf("NewGormRowStore: %w", err)
	}
	return &gormRowStore{db: db}, nil
}

func (r *gormRowStore) Load(ctx context.Context) ([]model.Entry, error) {
	logger := middleware.GetLogger(ctx)
	var rows []VocabularyRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		logger.Error("Error loading vocabulary rows from DB", "error", err)
		return nil, fmt.Errorf("gormRowStore.Load: %w: %w", model.ErrStore, err)
	}

	entries := make([]model.Entry, 0, len(rows))
	for _, row := range rows {
		e := model.Entry{
			Word:      row.Word,
			Meaning:   row.Meaning,
			Phonetic:  row.Phonetic,
			ExampleEN: row.ExampleEN,
			ExampleJA: row.ExampleJA,
			Synonyms:  row.Synonyms,
		}
		if row.Extra != "" {
			if err := json.Unmarshal([]byte(row.Extra), &e.Extra); err != nil {
				logger.Warn("Ignoring malformed extra columns", "error", err, "position", row.Position)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save は全行を削除して書き直します (1トランザクション)。
func (r *gormRowStore) Save(ctx context.Context, entries []model.Entry) error {
	logger := middleware.GetLogger(ctx)

	rows := make([]VocabularyRow, 0, len(entries))
	for i, e := range entries {
		row := VocabularyRow{
			Position:  i + 1,
			Word:      e.Word,
			Meaning:   e.Meaning,
			Phonetic:  e.Phonetic,
			ExampleEN: e.ExampleEN,
			ExampleJA: e.ExampleJA,
			Synonyms:  e.Synonyms,
		}
		if len(e.Extra) > 0 {
			b, err := json.Marshal(e.Extra)
			if err != nil {
				return fmt.Errorf("gormRowStore.Save: %w: %w", model.ErrStore, err)
			}
			row.Extra = string(b)
		}
		rows = append(rows, row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&VocabularyRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 100).Error
	})
	if err != nil {
		logger.Error("Error rewriting vocabulary rows in DB", "error", err, "rows", len(rows))
		return fmt.Errorf("gormRowStore.Save: %w: %w", model.ErrStore, err)
	}
	return nil
}
