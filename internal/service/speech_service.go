//go:generate mockery --name SpeechService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"
)

const speechMIMEType = "audio/mpeg"

// SpeechService は英語テキストを読み上げ用の音声に変換します。
type SpeechService interface {
	Speak(ctx context.Context, text string) (*model.Playback, error)
}

type speechService struct {
	synth    Synthesizer // nil = 音声機能なし
	language string
}

func NewSpeechService(synth Synthesizer, language string) SpeechService {
	if language == "" {
		language = "en"
	}
	return &speechService{synth: synth, language: language}
}

// Speak はテキストが空なら何もしない (nil, nil)。キャッシュはせず毎回合成する。
func (s *speechService) Speak(ctx context.Context, text string) (*model.Playback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if s.synth == nil {
		return nil, model.ErrFeatureDisabled
	}

	audio, err := s.synth.Synthesize(ctx, text, s.language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio", model.ErrSynthesis)
	}

	middleware.GetLogger(ctx).Debug("Speech synthesized", "chars", len(text), "bytes", len(audio))
	return &model.Playback{
		Text:     text,
		MIMEType: speechMIMEType,
		Base64:   base64.StdEncoding.EncodeToString(audio),
	}, nil
}
