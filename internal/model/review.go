// internal/model/review.go
package model

import "strconv"

// 行ごとの表示切替の種類
const (
	RevealMeaning     = "meaning"
	RevealTranslation = "translation"
)

// RevealKey は行ごとの表示切替のキーです (例: "meaning:3")。
// index は保存順の位置。
func RevealKey(kind string, index int) string {
	return kind + ":" + strconv.Itoa(index)
}

// ReviewQuery は一覧描画の条件です。
type ReviewQuery struct {
	Search    string
	RevealAll bool
	Revealed  map[string]bool
}

// ReviewRow は一覧の1行分の表示内容です。
// 隠している項目は空文字列で、Show* が false になる。
type ReviewRow struct {
	Index int    `json:"index"`
	Word  string `json:"word"`

	ShowMeaning bool   `json:"show_meaning"`
	Meaning     string `json:"meaning,omitempty"`
	Phonetic    string `json:"phonetic,omitempty"`
	Synonyms    string `json:"synonyms,omitempty"`

	ExampleEN string `json:"example_en"`

	// HasTranslation は和訳が保存されているか (隠していても true)
	HasTranslation  bool   `json:"has_translation"`
	ShowTranslation bool   `json:"show_translation"`
	ExampleJA       string `json:"example_ja,omitempty"`

	CanPlay bool `json:"can_play"`
}

func (r ReviewRow) MeaningKey() string     { return RevealKey(RevealMeaning, r.Index) }
func (r ReviewRow) TranslationKey() string { return RevealKey(RevealTranslation, r.Index) }

// ReviewListResponse は一覧APIのレスポンスDTO
type ReviewListResponse struct {
	Total int         `json:"total"`
	Rows  []ReviewRow `json:"rows"`
}
