// internal/handlers/entry_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"go_5_vocab_flash/internal/handlers"
	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/repository"
	repo_mocks "go_5_vocab_flash/internal/repository/mocks"
	"go_5_vocab_flash/internal/service"
	"go_5_vocab_flash/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type entryTestEnv struct {
	router    http.Handler
	store     repository.RowStore
	generator *mocks.GenerationService
	speech    *mocks.SpeechService
}

func setupEntryHandler(t *testing.T, store repository.RowStore) *entryTestEnv {
	t.Helper()

	entries := service.NewEntryService(store)
	review := service.NewReviewService(entries, true)
	generator := mocks.NewGenerationService(t)
	speech := mocks.NewSpeechService(t)

	h := handlers.NewEntryHandler(entries, review, generator, speech, newTestLogger())
	router := chi.NewRouter()
	router.Route("/api/v1", h.Register)

	return &entryTestEnv{router: router, store: store, generator: generator, speech: speech}
}

func sampleEntries() []model.Entry {
	return []model.Entry{
		{Word: "apple", Meaning: "りんご", ExampleEN: "I ate an apple.", ExampleJA: "私はりんごを食べた。"},
		{Word: "Run", Meaning: "走る", ExampleEN: "I run every day.", ExampleJA: "私は毎日走る。"},
		{Word: "apple", Meaning: "二件目", Extra: map[string]string{"note": "dup"}},
	}
}

func TestEntryHandler_GetEntries(t *testing.T) {
	env := setupEntryHandler(t, repository.NewMemoryRowStore(sampleEntries()))

	tests := []struct {
		name      string
		path      string
		wantWords []string
	}{
		{name: "正常系: 全件を新しい順に返す", path: "/api/v1/entries", wantWords: []string{"apple", "Run", "apple"}},
		{name: "正常系: 大文字小文字を区別せず単語で検索", path: "/api/v1/entries?q=run", wantWords: []string{"Run"}},
		{name: "正常系: 意味で検索", path: "/api/v1/entries?q=%E3%82%8A%E3%82%93%E3%81%94", wantWords: []string{"apple"}},
		{name: "正常系: 該当なし", path: "/api/v1/entries?q=zzz", wantWords: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodGet, Path: tc.path}, http.StatusOK)

			var resp model.ReviewListResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, len(tc.wantWords), resp.Total)

			words := []string{}
			for _, row := range resp.Rows {
				words = append(words, row.Word)
				// API では常に全項目を返す
				assert.True(t, row.ShowMeaning)
				assert.True(t, row.ShowTranslation)
			}
			assert.Equal(t, tc.wantWords, words)
		})
	}
}

func TestEntryHandler_GetEntries_StoreError(t *testing.T) {
	store := repo_mocks.NewRowStore(t)
	store.On("Load", mock.Anything).Return(nil, fmt.Errorf("%w: sheet unavailable", model.ErrStore)).Once()
	env := setupEntryHandler(t, store)

	body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/entries"}, http.StatusServiceUnavailable)
	verifyErrorResponse(t, body, "STORE_UNAVAILABLE")
}

func TestEntryHandler_PostEntry(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		expectedCode int
		errorCode    string
		wantRows     int
	}{
		{
			name:         "正常系: 空欄ありでも追加できる",
			body:         model.PostEntryRequest{Word: "banana", Meaning: "バナナ"},
			expectedCode: http.StatusCreated,
			wantRows:     4,
		},
		{
			name:         "異常系: word がない",
			body:         model.PostEntryRequest{Meaning: "意味だけ"},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			wantRows:     3,
		},
		{
			name:         "異常系: 不正なJSON",
			body:         `{"word": `,
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_JSON",
			wantRows:     3,
		},
		{
			name:         "異常系: 未知のフィールド",
			body:         `{"word": "banana", "term": "x"}`,
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_JSON",
			wantRows:     3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := setupEntryHandler(t, repository.NewMemoryRowStore(sampleEntries()))

			body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/entries", Body: tc.body}, tc.expectedCode)
			if tc.errorCode != "" {
				verifyErrorResponse(t, body, tc.errorCode)
			} else {
				var got model.Entry
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "banana", got.Word)
			}

			stored, err := env.store.Load(t.Context())
			require.NoError(t, err)
			assert.Len(t, stored, tc.wantRows)
			if tc.errorCode == "" {
				assert.Equal(t, "banana", stored[len(stored)-1].Word)
				assert.Equal(t, "", stored[len(stored)-1].ExampleEN)
			}
		})
	}
}

func TestEntryHandler_PutEntry(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         interface{}
		expectedCode int
		errorCode    string
	}{
		{
			name:         "正常系: 最初に一致した1件だけを上書き",
			path:         "/api/v1/entries/apple",
			body:         model.PutEntryRequest{Word: "apple", Meaning: "林檎"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 対象がない",
			path:         "/api/v1/entries/cherry",
			body:         model.PutEntryRequest{Word: "cherry"},
			expectedCode: http.StatusNotFound,
			errorCode:    "NOT_FOUND",
		},
		{
			name:         "異常系: word がない",
			path:         "/api/v1/entries/apple",
			body:         model.PutEntryRequest{Meaning: "林檎"},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := setupEntryHandler(t, repository.NewMemoryRowStore(sampleEntries()))

			body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodPut, Path: tc.path, Body: tc.body}, tc.expectedCode)
			if tc.errorCode != "" {
				verifyErrorResponse(t, body, tc.errorCode)
				return
			}

			stored, err := env.store.Load(t.Context())
			require.NoError(t, err)
			require.Len(t, stored, 3)
			assert.Equal(t, "林檎", stored[0].Meaning)
			// 2件目の apple と未知の列はそのまま
			assert.Equal(t, "二件目", stored[2].Meaning)
			assert.Equal(t, "dup", stored[2].Extra["note"])
		})
	}
}

func TestEntryHandler_GetWords(t *testing.T) {
	env := setupEntryHandler(t, repository.NewMemoryRowStore(sampleEntries()))

	body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/words"}, http.StatusOK)

	var words []string
	require.NoError(t, json.Unmarshal(body, &words))
	assert.Equal(t, []string{"apple", "Run"}, words)
}

func TestEntryHandler_PostGeneration(t *testing.T) {
	generated := &model.Entry{Word: "fast", Meaning: "速い", ExampleEN: "He runs fast.", ExampleJA: "彼は速く走る。"}

	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(gen *mocks.GenerationService)
		expectedCode int
		errorCode    string
	}{
		{
			name: "正常系: 日本語から生成",
			body: model.GenerateRequest{Mode: "phrase", Text: "速い"},
			setupMock: func(gen *mocks.GenerationService) {
				gen.On("Generate", mock.Anything, model.ModePhraseToEntry, "速い").Return(generated, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: 不明なモード",
			body:         model.GenerateRequest{Mode: "poem", Text: "速い"},
			setupMock:    func(gen *mocks.GenerationService) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name: "異常系: 生成に失敗",
			body: model.GenerateRequest{Mode: "word", Text: "fast"},
			setupMock: func(gen *mocks.GenerationService) {
				gen.On("Generate", mock.Anything, model.ModeWordToEntry, "fast").
					Return(nil, fmt.Errorf("%w: invalid JSON response", model.ErrGeneration)).Once()
			},
			expectedCode: http.StatusBadGateway,
			errorCode:    "GENERATION_FAILED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := setupEntryHandler(t, repository.NewMemoryRowStore(nil))
			tc.setupMock(env.generator)

			body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/generations", Body: tc.body}, tc.expectedCode)
			if tc.errorCode != "" {
				verifyErrorResponse(t, body, tc.errorCode)
				return
			}
			var got model.Entry
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "fast", got.Word)

			// 生成だけでは保存しない
			stored, err := env.store.Load(t.Context())
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestEntryHandler_PostSpeech(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(speech *mocks.SpeechService)
		expectedCode int
		errorCode    string
	}{
		{
			name: "正常系: base64の音声を返す",
			body: model.SpeechRequest{Text: "apple"},
			setupMock: func(speech *mocks.SpeechService) {
				speech.On("Speak", mock.Anything, "apple").
					Return(&model.Playback{Text: "apple", MIMEType: "audio/mpeg", Base64: "AAAA"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "異常系: 空白のみ",
			body: model.SpeechRequest{Text: "   "},
			setupMock: func(speech *mocks.SpeechService) {
				speech.On("Speak", mock.Anything, "   ").Return(nil, nil).Once()
			},
			expectedCode: http.StatusBadRequest,
			errorCode:    "EMPTY_TEXT",
		},
		{
			name: "異常系: 音声機能が無効",
			body: model.SpeechRequest{Text: "apple"},
			setupMock: func(speech *mocks.SpeechService) {
				speech.On("Speak", mock.Anything, "apple").Return(nil, model.ErrFeatureDisabled).Once()
			},
			expectedCode: http.StatusNotFound,
			errorCode:    "FEATURE_DISABLED",
		},
		{
			name: "異常系: 合成に失敗",
			body: model.SpeechRequest{Text: "apple"},
			setupMock: func(speech *mocks.SpeechService) {
				speech.On("Speak", mock.Anything, "apple").Return(nil, fmt.Errorf("%w: quota", model.ErrSynthesis)).Once()
			},
			expectedCode: http.StatusBadGateway,
			errorCode:    "SYNTHESIS_FAILED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := setupEntryHandler(t, repository.NewMemoryRowStore(nil))
			tc.setupMock(env.speech)

			body := sendRequest(t, env.router, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/speech", Body: tc.body}, tc.expectedCode)
			if tc.errorCode != "" {
				verifyErrorResponse(t, body, tc.errorCode)
				return
			}
			var got model.Playback
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "audio/mpeg", got.MIMEType)
			assert.Equal(t, "AAAA", got.Base64)
		})
	}
}
