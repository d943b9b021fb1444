// internal/model/entry.go
package model

// 列名 (スプレッドシートのヘッダー行)
const (
	ColumnWord      = "word"
	ColumnMeaning   = "meaning"
	ColumnPhonetic  = "phonetic"
	ColumnExampleEN = "example_en"
	ColumnExampleJA = "example_ja"
	ColumnSynonyms  = "synonyms"
)

// Columns は書き込み時のヘッダー順序です。
var Columns = []string{
	ColumnWord,
	ColumnMeaning,
	ColumnPhonetic,
	ColumnExampleEN,
	ColumnExampleJA,
	ColumnSynonyms,
}

// Entry は単語帳の1行 (1レコード) を表します
type Entry struct {
	Word      string `json:"word"`
	Meaning   string `json:"meaning"`
	Phonetic  string `json:"phonetic"`
	ExampleEN string `json:"example_en"`
	ExampleJA string `json:"example_ja"`
	Synonyms  string `json:"synonyms"`

	// Extra は未知の列の値。全件書き戻しで列を失わないために保持する
	Extra map[string]string `json:"-"`
}

// Clone はExtraも含めたディープコピーを返します。
func (e Entry) Clone() Entry {
	c := e
	if e.Extra != nil {
		c.Extra = make(map[string]string, len(e.Extra))
		for k, v := range e.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// Get は列名で値を取得します。未知の列はExtraから返します。
func (e Entry) Get(column string) string {
	switch column {
	case ColumnWord:
		return e.Word
	case ColumnMeaning:
		return e.Meaning
	case ColumnPhonetic:
		return e.Phonetic
	case ColumnExampleEN:
		return e.ExampleEN
	case ColumnExampleJA:
		return e.ExampleJA
	case ColumnSynonyms:
		return e.Synonyms
	}
	return e.Extra[column]
}

// Set は列名で値を設定します。
func (e *Entry) Set(column, value string) {
	switch column {
	case ColumnWord:
		e.Word = value
	case ColumnMeaning:
		e.Meaning = value
	case ColumnPhonetic:
		e.Phonetic = value
	case ColumnExampleEN:
		e.ExampleEN = value
	case ColumnExampleJA:
		e.ExampleJA = value
	case ColumnSynonyms:
		e.Synonyms = value
	default:
		if e.Extra == nil {
			e.Extra = make(map[string]string)
		}
		e.Extra[column] = value
	}
}

// WithFields は編集可能なフィールドだけを上書きしたコピーを返します (Extraは維持)
func (e Entry) WithFields(f EntryForm) Entry {
	c := e.Clone()
	c.Word = f.Word
	c.Meaning = f.Meaning
	c.Phonetic = f.Phonetic
	c.ExampleEN = f.ExampleEN
	c.ExampleJA = f.ExampleJA
	c.Synonyms = f.Synonyms
	return c
}

// EntryForm は編集フォームの入力値です。空のフィールドも許可します。
type EntryForm struct {
	Word      string `json:"word"`
	Meaning   string `json:"meaning"`
	Phonetic  string `json:"phonetic"`
	ExampleEN string `json:"example_en"`
	ExampleJA string `json:"example_ja"`
	Synonyms  string `json:"synonyms"`
}

// KeepRichFields は phonetic と synonyms を prev の値に戻したコピーを返します。
// 画面に出していない列を空の送信値で上書きしないために使う。
func (f EntryForm) KeepRichFields(prev EntryForm) EntryForm {
	f.Phonetic = prev.Phonetic
	f.Synonyms = prev.Synonyms
	return f
}

// FormFromEntry は保存済み/生成済みの値を正規化してフォームの初期値にします。
func FormFromEntry(e Entry) EntryForm {
	return EntryForm{
		Word:      Normalize(e.Word),
		Meaning:   Normalize(e.Meaning),
		Phonetic:  Normalize(e.Phonetic),
		ExampleEN: Normalize(e.ExampleEN),
		ExampleJA: Normalize(e.ExampleJA),
		Synonyms:  Normalize(e.Synonyms),
	}
}

// ToEntry はフォームの値からレコードを組み立てます。
func (f EntryForm) ToEntry() Entry {
	return Entry{}.WithFields(f)
}

// 単語作成リクエストDTO (API)
type PostEntryRequest struct {
	Word      string `json:"word" validate:"required"`
	Meaning   string `json:"meaning"`
	Phonetic  string `json:"phonetic"`
	ExampleEN string `json:"example_en"`
	ExampleJA string `json:"example_ja"`
	Synonyms  string `json:"synonyms"`
}

// 単語更新（全体）リクエストDTO (API)
type PutEntryRequest struct {
	Word      string `json:"word" validate:"required"`
	Meaning   string `json:"meaning"`
	Phonetic  string `json:"phonetic"`
	ExampleEN string `json:"example_en"`
	ExampleJA string `json:"example_ja"`
	Synonyms  string `json:"synonyms"`
}

func (r PostEntryRequest) Form() EntryForm { return EntryForm(r) }

func (r PutEntryRequest) Form() EntryForm { return EntryForm(r) }
