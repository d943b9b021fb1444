package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type openaiSynthesizer struct {
	client openai.Client
	voice  openai.AudioSpeechNewParamsVoice
}

// NewOpenAISynthesizer は OpenAI の音声合成 (tts-1) を使う Synthesizer を作成します。
func NewOpenAISynthesizer(cfg config.SpeechConfig) (Synthesizer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("NewOpenAISynthesizer: api key is required")
	}

	voice := openai.AudioSpeechNewParamsVoiceAlloy
	if cfg.Voice != "" {
		voice = openai.AudioSpeechNewParamsVoice(cfg.Voice)
	}

	return &openaiSynthesizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		voice:  voice,
	}, nil
}

// Synthesize は language を使わない (言語は入力テキストから判定される)。
func (o *openaiSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	resp, err := o.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Input:          text,
		Model:          openai.SpeechModelTTS1,
		Voice:          o.voice,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		logger.Error("OpenAI speech request failed", "error", err)
		return nil, fmt.Errorf("openaiSynthesizer.Synthesize: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openaiSynthesizer.Synthesize: reading body: %w", err)
	}
	return audio, nil
}
