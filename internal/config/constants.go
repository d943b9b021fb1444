// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "VocabFlash"
	AppTitle   = "AI 英文法・単語帳"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultStoreDriver        = "sheets"
	DefaultSheetName          = "Sheet1"
	DefaultGenerationProvider = "gemini"
	DefaultGenerationModel    = "gemini-flash-latest"
	DefaultSpeechProvider     = "google"
	DefaultSpeechLanguage     = "en"
)

// セッション
const (
	SessionCookieName = "vocab_session"
	SessionTTL        = 12 * time.Hour
)

// サーバー
const (
	RequestTimeout  = 60 * time.Second // LLM/音声の呼び出しを含む
	ShutdownTimeout = 5 * time.Second
)
