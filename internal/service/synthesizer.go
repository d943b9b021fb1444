//go:generate mockery --name Synthesizer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/model"
)

// Synthesizer はテキストを MP3 の音声データに変換します。
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// NewSynthesizer は設定されたプロバイダの Synthesizer を作成します。
// 返す関数はクライアントの解放用です。
func NewSynthesizer(ctx context.Context, cfg config.SpeechConfig) (Synthesizer, func(), error) {
	switch cfg.Provider {
	case "google", "":
		s, err := NewGoogleSynthesizer(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "openai":
		s, err := NewOpenAISynthesizer(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown speech provider %q: %w", cfg.Provider, model.ErrInvalidInput)
}
