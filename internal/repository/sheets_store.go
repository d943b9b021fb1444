package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SpreadsheetID は設定値 (IDまたはURL) からスプレッドシートIDを取り出します。
func SpreadsheetID(target string) string {
	t := strings.TrimSpace(target)
	if m := spreadsheetIDPattern.FindStringSubmatch(t); m != nil {
		return m[1]
	}
	return t
}

// sheetsValues は Spreadsheets.Values のうち使う操作だけを抜き出したものです。
type sheetsValues interface {
	Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	Clear(ctx context.Context, spreadsheetID, rng string) error
	Update(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error
}

type sheetsRowStore struct {
	values        sheetsValues
	spreadsheetID string
	sheetName     string
}

// NewSheetsRowStore は Google スプレッドシートを使う RowStore を作成します。
func NewSheetsRowStore(ctx context.Context, cfg config.StoreConfig) (RowStore, error) {
	id := SpreadsheetID(cfg.Spreadsheet)
	if id == "" {
		return nil, fmt.Errorf("NewSheetsRowStore: spreadsheet is not configured: %w", model.ErrInvalidInput)
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSheetsRowStore: %w", err)
	}
	return newSheetsRowStore(&apiValues{srv: srv}, id, cfg.SheetName), nil
}

func newSheetsRowStore(values sheetsValues, spreadsheetID, sheetName string) *sheetsRowStore {
	if sheetName == "" {
		sheetName = config.DefaultSheetName
	}
	return &sheetsRowStore{values: values, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

func (s *sheetsRowStore) Load(ctx context.Context) ([]model.Entry, error) {
	logger := middleware.GetLogger(ctx)
	rows, err := s.values.Get(ctx, s.spreadsheetID, s.sheetName)
	if err != nil {
		logger.Error("Error reading spreadsheet", "error", err, "sheet", s.sheetName)
		return nil, fmt.Errorf("sheetsRowStore.Load: %w: %w", model.ErrStore, err)
	}
	entries, _ := DecodeTable(rows)
	return entries, nil
}

// Save は表全体を A1 から上書きし、前より短くなった分の行だけを消します。
// 書き込みに失敗しても既存の行は残る。
func (s *sheetsRowStore) Save(ctx context.Context, entries []model.Entry) error {
	logger := middleware.GetLogger(ctx)

	// 既存のヘッダー表記と列順を維持する (ヘッダーより長い行の列も含める)
	current, err := s.values.Get(ctx, s.spreadsheetID, s.sheetName)
	if err != nil {
		logger.Error("Error reading spreadsheet", "error", err, "sheet", s.sheetName)
		return fmt.Errorf("sheetsRowStore.Save: %w: %w", model.ErrStore, err)
	}
	_, header := DecodeTable(current)
	values := EncodeTable(entries, header)

	if err := s.values.Update(ctx, s.spreadsheetID, s.sheetName+"!A1", values); err != nil {
		logger.Error("Error writing spreadsheet", "error", err, "sheet", s.sheetName, "rows", len(entries))
		return fmt.Errorf("sheetsRowStore.Save: %w: %w", model.ErrStore, err)
	}
	if len(current) > len(values) {
		rng := fmt.Sprintf("%s!%d:%d", s.sheetName, len(values)+1, len(current))
		if err := s.values.Clear(ctx, s.spreadsheetID, rng); err != nil {
			logger.Error("Error clearing stale rows", "error", err, "sheet", s.sheetName, "range", rng)
			return fmt.Errorf("sheetsRowStore.Save: %w: %w", model.ErrStore, err)
		}
	}
	logger.Info("Spreadsheet rewritten", "sheet", s.sheetName, "rows", len(entries))
	return nil
}

// apiValues は sheets.Service を sheetsValues に合わせるアダプタです。
type apiValues struct {
	srv *sheets.Service
}

func (a *apiValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := a.srv.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (a *apiValues) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := a.srv.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (a *apiValues) Update(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	_, err := a.srv.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}
