// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := middleware.GetLogger(r.Context())
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
	} else {
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    ErrorCode(err),
				Message: model.UserMessage(err),
			},
		}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Any("error", err), slog.Int("status", statusCode))
	} else {
		logger.Warn("Request rejected", slog.Any("error", err), slog.Int("status", statusCode))
	}

	RespondWithJSON(w, statusCode, errResp)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrFeatureDisabled):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNoPendingEntry):
		return http.StatusConflict
	case errors.Is(err, model.ErrGeneration), errors.Is(err, model.ErrSynthesis):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode はレスポンスに含めるエラーコードを返します。
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, model.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, model.ErrFeatureDisabled):
		return "FEATURE_DISABLED"
	case errors.Is(err, model.ErrNoPendingEntry):
		return "NO_PENDING_ENTRY"
	case errors.Is(err, model.ErrGeneration):
		return "GENERATION_FAILED"
	case errors.Is(err, model.ErrSynthesis):
		return "SYNTHESIS_FAILED"
	case errors.Is(err, model.ErrStore):
		return "STORE_UNAVAILABLE"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR", "message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse は検証エラーを日本語メッセージの AppError にします。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
