package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const defaultOpenAIChatModel = "gpt-4o-mini"

type openaiCompleter struct {
	client    openai.Client
	modelName string
}

// NewOpenAICompleter は OpenAI Chat Completions を使う Completer を作成します。
func NewOpenAICompleter(cfg config.GenerationConfig) (Completer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("NewOpenAICompleter: api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	modelName := cfg.Model
	// Gemini 用のデフォルトが残っている場合は置き換える
	if modelName == "" || strings.HasPrefix(modelName, "gemini") {
		modelName = defaultOpenAIChatModel
	}

	return &openaiCompleter{client: openai.NewClient(opts...), modelName: modelName}, nil
}

func (o *openaiCompleter) Complete(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	logger := middleware.GetLogger(ctx)
	logger.Debug("openai chat request", "model", o.modelName, "json", wantJSON)

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: shared.ChatModel(o.modelName),
	}
	if wantJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("openai chat request failed", "error", err, "model", o.modelName)
		return "", fmt.Errorf("openaiCompleter.Complete: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openaiCompleter.Complete: no choices in response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
