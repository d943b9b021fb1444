// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrGeneration      = errors.New("generation failed")       // LLM呼び出し/JSON解析の失敗
	ErrStore           = errors.New("store access failed")     // シート読み書きの失敗
	ErrSynthesis       = errors.New("speech synthesis failed") // 音声合成の失敗
	ErrNoPendingEntry  = errors.New("no pending entry")
	ErrFeatureDisabled = errors.New("feature disabled")
)

// AppError はユーザー向けメッセージを持つエラーです。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用の詳細情報を返します。
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
	}
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// UserMessage は画面に表示するメッセージを返します。
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	switch {
	case errors.Is(err, ErrGeneration):
		return "生成に失敗しました: " + err.Error()
	case errors.Is(err, ErrStore):
		return "スプレッドシートの読み書きに失敗しました: " + err.Error()
	case errors.Is(err, ErrSynthesis):
		return "音声の生成に失敗しました: " + err.Error()
	case errors.Is(err, ErrNoPendingEntry):
		return "保存する単語がありません。"
	case errors.Is(err, ErrNotFound):
		return "対象の単語が見つかりません。"
	case errors.Is(err, ErrInvalidInput):
		return "入力内容が正しくありません。"
	case errors.Is(err, ErrFeatureDisabled):
		return "この機能は無効になっています。"
	}
	return "エラー: " + err.Error()
}
