//go:generate mockery --name Completer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/model"
)

// Completer はプロンプトから1回分の応答テキストを返すLLMクライアントです。
// wantJSON が true の場合はJSONのみを返すよう要求する。
type Completer interface {
	Complete(ctx context.Context, prompt string, wantJSON bool) (string, error)
}

// NewCompleter は設定されたプロバイダの Completer を作成します。
func NewCompleter(ctx context.Context, cfg config.GenerationConfig) (Completer, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiCompleter(ctx, cfg)
	case "openai":
		return NewOpenAICompleter(cfg)
	}
	return nil, fmt.Errorf("unknown generation provider %q: %w", cfg.Provider, model.ErrInvalidInput)
}
