package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"

	"github.com/invopop/jsonschema"
	"google.golang.org/genai"
)

type geminiCompleter struct {
	client    *genai.Client
	modelName string
	schema    map[string]any
}

// NewGeminiCompleter は Gemini API を使う Completer を作成します。
func NewGeminiCompleter(ctx context.Context, cfg config.GenerationConfig) (Completer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("NewGeminiCompleter: api key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("NewGeminiCompleter: %w", err)
	}

	schema, err := generateJSONSchema[model.GeneratedEntry]()
	if err != nil {
		return nil, fmt.Errorf("NewGeminiCompleter: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = config.DefaultGenerationModel
	}

	return &geminiCompleter{client: client, modelName: modelName, schema: schema}, nil
}

func (g *geminiCompleter) Complete(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	logger := middleware.GetLogger(ctx)
	logger.Debug("gemini generate request", "model", g.modelName, "json", wantJSON)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	genCfg := &genai.GenerateContentConfig{}
	if wantJSON {
		genCfg.ResponseMIMEType = "application/json"
		genCfg.ResponseJsonSchema = g.schema
	}

	response, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, genCfg)
	if err != nil {
		logger.Error("gemini generate failed", "error", err, "model", g.modelName)
		return "", fmt.Errorf("geminiCompleter.Complete: %w", err)
	}
	return strings.TrimSpace(response.Text()), nil
}

// generateJSONSchema は構造体から JSON Schema (map) を作成します。
func generateJSONSchema[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var value T
	schema := reflector.Reflect(value)

	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, err
	}
	// $schema / $id は Gemini 側で不要
	delete(schemaMap, "$schema")
	delete(schemaMap, "$id")
	return schemaMap, nil
}
