package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_vocab_flash/internal/middleware"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := chimiddleware.RequestID(middleware.LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ハンドラ内ではリクエストスコープのロガーが取れる
		assert.NotSame(t, slog.Default(), middleware.GetLogger(r.Context()))
		http.Error(w, "missing", http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("text=apple"))
	req.Header.Set("Cookie", "vocab_session=secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var completed map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "Request completed" {
			completed = entry
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "WARN", completed["level"])
	assert.Equal(t, float64(http.StatusNotFound), completed["status"])
	assert.NotEmpty(t, completed["req_id"])

	// cookie の値はログに出さない
	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), "text=apple")
}
