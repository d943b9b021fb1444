package model

// GenerationMode は生成の入力モードです。
type GenerationMode string

const (
	ModeWordToEntry   GenerationMode = "word"    // 英単語 -> 項目
	ModePhraseToEntry GenerationMode = "phrase"  // 日本語 -> 英単語 + 項目
	ModeRefresh       GenerationMode = "refresh" // 既存単語の再生成 (wordモードと同じプロンプト)
)

// Label は画面表示用のラベルです。
func (m GenerationMode) Label() string {
	switch m {
	case ModeWordToEntry:
		return "英語から生成"
	case ModePhraseToEntry:
		return "日本語から英訳"
	case ModeRefresh:
		return "再生成"
	}
	return string(m)
}

// ParseGenerationMode はフォーム/APIの値をモードに変換します。
func ParseGenerationMode(s string) (GenerationMode, bool) {
	switch GenerationMode(s) {
	case ModeWordToEntry, ModePhraseToEntry, ModeRefresh:
		return GenerationMode(s), true
	}
	return "", false
}

// GeneratedEntry はLLMに要求するJSONの形 (スキーマ生成用)。
// synonyms は配列で返ってくることがあるため、パース時は map[string]any で受ける。
type GeneratedEntry struct {
	Word      string   `json:"word" jsonschema:"description=English headword"`
	Meaning   string   `json:"meaning" jsonschema:"description=Japanese meaning"`
	Phonetic  string   `json:"phonetic,omitempty" jsonschema:"description=IPA pronunciation"`
	ExampleEN string   `json:"example_en" jsonschema:"description=English example sentence"`
	ExampleJA string   `json:"example_ja" jsonschema:"description=Japanese translation of the example"`
	Synonyms  []string `json:"synonyms,omitempty" jsonschema:"description=English synonyms"`
}

// 生成リクエストDTO (API)
type GenerateRequest struct {
	Mode string `json:"mode" validate:"required,oneof=word phrase refresh"`
	Text string `json:"text" validate:"required,max=200"`
}

// 音声リクエストDTO (API)
type SpeechRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
