//go:generate mockery --name RowStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/model"
)

// RowStore は単語帳テーブル全体の読み書きを行います。
// 部分更新はなく、変更は常に全件の読み込み -> 書き戻しで行う。
type RowStore interface {
	Load(ctx context.Context) ([]model.Entry, error)
	Save(ctx context.Context, entries []model.Entry) error
}

// NewRowStore は設定されたドライバの RowStore を作成します。
// 返す関数はリソースの解放用です。
func NewRowStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (RowStore, func(), error) {
	switch cfg.Driver {
	case "sheets", "":
		s, err := NewSheetsRowStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "sqlite", "postgres":
		db, err := NewDB(cfg.Driver, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		s, err := NewGormRowStore(db)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return s, closer, nil
	case "memory":
		return NewMemoryRowStore(nil), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q: %w", cfg.Driver, model.ErrInvalidInput)
}
