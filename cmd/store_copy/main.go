// cmd/store_copy/main.go
//
// 単語帳テーブルを別のストアへ丸ごとコピーします (例: スプレッドシート -> SQLite のバックアップ)。
//
//	go run ./cmd/store_copy -from sheets -to sqlite -to-url file:backup.db
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/repository"
)

func main() {
	from := flag.String("from", "", "コピー元のドライバ (sheets | sqlite | postgres)。省略時は設定ファイルの store.driver")
	fromURL := flag.String("from-url", "", "コピー元の database_url (sqlite / postgres)")
	to := flag.String("to", "sqlite", "コピー先のドライバ (sheets | sqlite | postgres)")
	toURL := flag.String("to-url", "", "コピー先の database_url (sqlite / postgres)")
	sheet := flag.String("to-sheet", "", "コピー先のシート名 (sheets)")
	flag.Parse()

	if err := config.LoadConfig("configs"); err != nil {
		if err := config.LoadConfig("../configs"); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = middleware.WithLogger(ctx, logger)

	srcCfg := config.Cfg.Store
	if *from != "" {
		srcCfg.Driver = *from
	}
	if *fromURL != "" {
		srcCfg.DatabaseURL = *fromURL
	}

	dstCfg := config.Cfg.Store
	dstCfg.Driver = *to
	dstCfg.DatabaseURL = *toURL
	if *sheet != "" {
		dstCfg.SheetName = *sheet
	}

	if srcCfg == dstCfg {
		log.Fatal("Source and destination are the same store")
	}

	src, closeSrc, err := repository.NewRowStore(ctx, srcCfg, logger)
	if err != nil {
		log.Fatalf("Failed to open source store (%s): %v", srcCfg.Driver, err)
	}
	defer closeSrc()

	dst, closeDst, err := repository.NewRowStore(ctx, dstCfg, logger)
	if err != nil {
		log.Fatalf("Failed to open destination store (%s): %v", dstCfg.Driver, err)
	}
	defer closeDst()

	n, err := copyRows(ctx, src, dst)
	if err != nil {
		log.Fatalf("Copy failed: %v", err)
	}
	fmt.Printf("Copied %d rows: %s -> %s\n", n, srcCfg.Driver, dstCfg.Driver)
}

// copyRows はコピー元を全件読み込み、コピー先を全件書き換えます。
func copyRows(ctx context.Context, src, dst repository.RowStore) (int, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load: %w", err)
	}
	if err := dst.Save(ctx, entries); err != nil {
		return 0, fmt.Errorf("save: %w", err)
	}
	return len(entries), nil
}
