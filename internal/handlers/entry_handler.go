// internal/handlers/entry_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/service"
	"go_5_vocab_flash/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// EntryHandler は単語帳の JSON API です。
type EntryHandler struct {
	entries   service.EntryService
	review    service.ReviewService
	generator service.GenerationService
	speech    service.SpeechService
	logger    *slog.Logger
}

func NewEntryHandler(
	entries service.EntryService,
	review service.ReviewService,
	generator service.GenerationService,
	speech service.SpeechService,
	logger *slog.Logger,
) *EntryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryHandler{
		entries:   entries,
		review:    review,
		generator: generator,
		speech:    speech,
		logger:    logger,
	}
}

// Register は /api/v1 配下のルートを登録します。
func (h *EntryHandler) Register(r chi.Router) {
	r.Route("/entries", func(r chi.Router) {
		r.Get("/", h.GetEntries)
		r.Post("/", h.PostEntry)
		r.Put("/{word}", h.PutEntry)
	})
	r.Get("/words", h.GetWords)
	r.Post("/generations", h.PostGeneration)
	r.Post("/speech", h.PostSpeech)
}

// GetEntries は一覧を新しい順に返します (API では全項目を表示)。
func (h *EntryHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntries"))
	q := r.URL.Query().Get("q")

	rows, err := h.review.Render(r.Context(), model.ReviewQuery{Search: q, RevealAll: true})
	if err != nil {
		logger.Error("Error rendering entries", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}

	logger.Info("Entries listed successfully", slog.Int("count", len(rows)))
	webutil.RespondWithJSON(w, http.StatusOK, model.ReviewListResponse{Total: len(rows), Rows: rows})
}

// PostEntry は1件を末尾に追加します。
func (h *EntryHandler) PostEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEntry"))

	var req model.PostEntryRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}

	entry := req.Form().ToEntry()
	if err := h.entries.Append(r.Context(), entry); err != nil {
		logger.Error("Error appending entry", slog.Any("error", err), slog.String("word", req.Word))
		webutil.HandleError(w, r, err)
		return
	}

	logger.Info("Entry appended successfully", slog.String("word", entry.Word))
	webutil.RespondWithJSON(w, http.StatusCreated, entry)
}

// PutEntry は {word} に一致する最初の1件を上書きします。
func (h *EntryHandler) PutEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutEntry"))

	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil || word == "" {
		logger.Warn("Invalid word in URL", slog.String("word", chi.URLParam(r, "word")))
		appErr := model.NewAppError("INVALID_URL_PARAM", "wordの形式が正しくありません。", "word", model.ErrInvalidInput)
		webutil.HandleError(w, r, appErr)
		return
	}
	logger = logger.With(slog.String("target", word))

	var req model.PutEntryRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}

	updated, err := h.entries.UpdateFirst(r.Context(), word, req.Form())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Entry not found")
		} else {
			logger.Error("Error updating entry", slog.Any("error", err))
		}
		webutil.HandleError(w, r, err)
		return
	}

	logger.Info("Entry updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *EntryHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	words, err := h.entries.Words(r.Context())
	if err != nil {
		logger.Error("Error listing words", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}
	if words == nil {
		words = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words)
}

// PostGeneration は生成結果を返すだけで保存はしません。
func (h *EntryHandler) PostGeneration(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGeneration"))

	var req model.GenerateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}

	entry, err := h.generator.Generate(r.Context(), model.GenerationMode(req.Mode), req.Text)
	if err != nil {
		logger.Error("Error generating entry", slog.Any("error", err), slog.String("mode", req.Mode))
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) PostSpeech(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSpeech"))

	var req model.SpeechRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}

	playback, err := h.speech.Speak(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error synthesizing speech", slog.Any("error", err))
		webutil.HandleError(w, r, err)
		return
	}
	if playback == nil {
		// 空白のみのテキスト
		webutil.HandleError(w, r, model.NewAppError("EMPTY_TEXT", "テキストを入力してください。", "text", model.ErrInvalidInput))
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, playback)
}
