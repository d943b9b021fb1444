//go:generate mockery --name GenerationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"
)

// GenerationService はLLMで単語帳の項目を生成します。
type GenerationService interface {
	Generate(ctx context.Context, mode model.GenerationMode, seed string) (*model.Entry, error)
}

type generationService struct {
	completer   Completer
	analyzer    PhraseAnalyzer // nil可
	richEntries bool
}

func NewGenerationService(completer Completer, analyzer PhraseAnalyzer, richEntries bool) GenerationService {
	return &generationService{
		completer:   completer,
		analyzer:    analyzer,
		richEntries: richEntries,
	}
}

func (s *generationService) Generate(ctx context.Context, mode model.GenerationMode, seed string) (*model.Entry, error) {
	logger := middleware.GetLogger(ctx)

	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, model.ErrInvalidInput
	}
	if _, ok := model.ParseGenerationMode(string(mode)); !ok {
		return nil, fmt.Errorf("unknown generation mode %q: %w", mode, model.ErrInvalidInput)
	}

	hint := ""
	if mode == model.ModePhraseToEntry && s.analyzer != nil {
		h, err := s.analyzer.Hint(seed)
		if err != nil {
			// ヒントなしで続行
			logger.Warn("Phrase analysis failed", "error", err)
		} else {
			hint = h
		}
	}

	prompt := buildPrompt(mode, seed, s.richEntries, hint)
	text, err := s.completer.Complete(ctx, prompt, true)
	if err != nil {
		logger.Error("Generation request failed", "error", err, "mode", string(mode))
		return nil, fmt.Errorf("%w: %w", model.ErrGeneration, err)
	}

	entry, err := parseGeneratedEntry(text)
	if err != nil {
		logger.Error("Failed to parse generated entry", "error", err, "response", text)
		return nil, fmt.Errorf("%w: %w", model.ErrGeneration, err)
	}

	// 固定したフィールドが返ってこなかった場合は入力値で補う
	switch mode {
	case model.ModeWordToEntry, model.ModeRefresh:
		if entry.Word == "" {
			entry.Word = seed
		}
	case model.ModePhraseToEntry:
		if entry.Meaning == "" {
			entry.Meaning = seed
		}
	}
	if !s.richEntries {
		entry.Phonetic = ""
		entry.Synonyms = ""
	}

	logger.Info("Entry generated", "mode", string(mode), "word", entry.Word)
	return entry, nil
}

// buildPrompt はモードごとのプロンプトを作成します。
// word/refresh は word を、phrase は meaning を入力値に固定する。
func buildPrompt(mode model.GenerationMode, seed string, rich bool, hint string) string {
	var b strings.Builder

	switch mode {
	case model.ModePhraseToEntry:
		fmt.Fprintf(&b, "日本語「%s」の英訳として最適な単語1つと例文をJSONで返してください。", seed)
	default:
		fmt.Fprintf(&b, "英単語「%s」について以下の形式でJSONを返してください。", seed)
	}

	word, meaning := seed, "意味"
	if mode == model.ModePhraseToEntry {
		word, meaning = "英単語", seed
	}

	fields := []string{
		fmt.Sprintf("%q: %q", model.ColumnWord, word),
		fmt.Sprintf("%q: %q", model.ColumnMeaning, meaning),
	}
	if rich {
		fields = append(fields, fmt.Sprintf("%q: %q", model.ColumnPhonetic, "発音記号"))
	}
	fields = append(fields,
		fmt.Sprintf("%q: %q", model.ColumnExampleEN, "英文"),
		fmt.Sprintf("%q: %q", model.ColumnExampleJA, "和訳"),
	)
	if rich {
		fields = append(fields, fmt.Sprintf("%q: [%q]", model.ColumnSynonyms, "類義語"))
	}
	b.WriteString("{" + strings.Join(fields, ", ") + "}")

	if hint != "" {
		fmt.Fprintf(&b, "\n参考 (語句の構成): %s", hint)
	}
	return b.String()
}

// parseGeneratedEntry はJSON応答を解析し、各フィールドを表示用の文字列に揃えます。
func parseGeneratedEntry(text string) (*model.Entry, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		// [{...}] の形で返ってくることがある
		var list []map[string]any
		if listErr := json.Unmarshal([]byte(text), &list); listErr != nil || len(list) == 0 {
			return nil, fmt.Errorf("invalid JSON response: %w", err)
		}
		fields = list[0]
	}
	if fields == nil {
		return nil, fmt.Errorf("invalid JSON response: null")
	}

	return &model.Entry{
		Word:      model.Normalize(fields[model.ColumnWord]),
		Meaning:   model.Normalize(fields[model.ColumnMeaning]),
		Phonetic:  model.Normalize(fields[model.ColumnPhonetic]),
		ExampleEN: model.Normalize(fields[model.ColumnExampleEN]),
		ExampleJA: model.Normalize(fields[model.ColumnExampleJA]),
		Synonyms:  model.Normalize(fields[model.ColumnSynonyms]),
	}, nil
}

// stripCodeFence は ```json ... ``` で囲まれた応答から中身を取り出します。
func stripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.Index(t, "\n"); i >= 0 {
		t = t[i+1:]
	} else {
		t = strings.TrimPrefix(t, "json")
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
