// internal/config/config.go
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Store      StoreConfig      `mapstructure:"store"`
	Generation GenerationConfig `mapstructure:"generation"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	App        struct {
		RichEntries bool   `mapstructure:"rich_entries"` // 発音・類義語を扱うか
		Title       string `mapstructure:"title"`
	} `mapstructure:"app"`
	CORS CORSConfig `mapstructure:"cors"`
}

// StoreConfig はスプレッドシート(行ストア)の接続設定
type StoreConfig struct {
	Driver          string `mapstructure:"driver"`      // sheets | sqlite | postgres | memory
	Spreadsheet     string `mapstructure:"spreadsheet"` // IDまたはURL
	SheetName       string `mapstructure:"sheet_name"`
	CredentialsFile string `mapstructure:"credentials_file"`
	CredentialsJSON string `mapstructure:"credentials_json"`
	DatabaseURL     string `mapstructure:"database_url"`
}

// GenerationConfig はLLMの設定
type GenerationConfig struct {
	Provider string `mapstructure:"provider"` // gemini | openai
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
}

// SpeechConfig は音声合成の設定
type SpeechConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Provider        string `mapstructure:"provider"` // google | openai
	APIKey          string `mapstructure:"api_key"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Language        string `mapstructure:"language"`
	Voice           string `mapstructure:"voice"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば環境変数として読み込む (APIキーなど)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment variables from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_GENERATION_API_KEY -> generation.api_key
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("generation.api_key", "APP_GENERATION_API_KEY", "GOOGLE_API_KEY")
	v.BindEnv("store.spreadsheet", "APP_STORE_SPREADSHEET", "SPREADSHEET")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Store Driver: %s", Cfg.Store.Driver)
	log.Printf("Generation: %s (%s)", Cfg.Generation.Provider, Cfg.Generation.Model)
	log.Printf("Speech Enabled: %t", Cfg.Speech.Enabled)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("store.driver", DefaultStoreDriver)
	v.SetDefault("store.sheet_name", DefaultSheetName)
	v.SetDefault("generation.provider", DefaultGenerationProvider)
	v.SetDefault("generation.model", DefaultGenerationModel)
	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.provider", DefaultSpeechProvider)
	v.SetDefault("speech.language", DefaultSpeechLanguage)
	v.SetDefault("app.rich_entries", true)
	v.SetDefault("app.title", AppTitle)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type"})
	v.SetDefault("cors.max_age", 300)
}

// applyFallbacks は空文字で上書きされた値などをデフォルトに戻します。
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Store.SheetName == "" {
		cfg.Store.SheetName = DefaultSheetName
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = DefaultGenerationModel
	}
	if cfg.Speech.Language == "" {
		cfg.Speech.Language = DefaultSpeechLanguage
	}
	if cfg.Store.Driver == "sheets" && cfg.Store.Spreadsheet == "" {
		log.Println("Warning: store.spreadsheet is not set in config.")
	}
	if cfg.Generation.APIKey == "" {
		log.Println("Warning: generation.api_key is not set in config.")
	}
}

// SpreadsheetURL はサイドバーのリンク用にスプレッドシートのURLを返します。
// IDだけが設定されている場合は編集URLを組み立てる。
func (c StoreConfig) SpreadsheetURL() string {
	s := strings.TrimSpace(c.Spreadsheet)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http") {
		return s
	}
	return "https://docs.google.com/spreadsheets/d/" + s + "/edit"
}
