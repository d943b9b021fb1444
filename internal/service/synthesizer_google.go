package service

import (
	"context"
	"fmt"
	"strings"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// GoogleSynthesizer は Google Cloud Text-to-Speech を使う Synthesizer です。
type GoogleSynthesizer struct {
	client *texttospeech.Client
	voice  string
}

func NewGoogleSynthesizer(ctx context.Context, cfg config.SpeechConfig) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGoogleSynthesizer: %w", err)
	}
	return &GoogleSynthesizer{client: client, voice: cfg.Voice}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	logger := middleware.GetLogger(ctx)

	voice := &texttospeechpb.VoiceSelectionParams{
		LanguageCode: languageCode(language),
		SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
	}
	if g.voice != "" {
		voice.Name = g.voice
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: voice,
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		logger.Error("Google TTS request failed", "error", err, "language", voice.LanguageCode)
		return nil, fmt.Errorf("GoogleSynthesizer.Synthesize: %w", err)
	}
	return resp.AudioContent, nil
}

func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

// languageCode は "en" のような言語名を BCP-47 の地域付きコードにします。
func languageCode(language string) string {
	l := strings.TrimSpace(language)
	switch strings.ToLower(l) {
	case "", "en":
		return "en-US"
	case "ja":
		return "ja-JP"
	}
	return l
}
