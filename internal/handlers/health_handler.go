package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_flash/internal/repository"
)

// HealthHandler はストアを1回読んで疎通を確認します。
type HealthHandler struct {
	store  repository.RowStore
	logger *slog.Logger
}

func NewHealthHandler(store repository.RowStore, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Load(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "Health check failed: could not load store", slog.Any("error", err))
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
