//go:generate mockery --name PhraseAnalyzer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// PhraseAnalyzer は日本語フレーズの形態素解析からプロンプト用のヒントを作ります。
type PhraseAnalyzer interface {
	Hint(phrase string) (string, error)
}

// 内容語として扱う品詞
var contentPOS = map[string]bool{
	"名詞":  true,
	"動詞":  true,
	"形容詞": true,
	"副詞":  true,
}

type kagomeAnalyzer struct {
	t *tokenizer.Tokenizer
}

// NewPhraseAnalyzer は IPA 辞書の kagome トークナイザを使う PhraseAnalyzer を作成します。
func NewPhraseAnalyzer() (PhraseAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("NewPhraseAnalyzer: %w", err)
	}
	return &kagomeAnalyzer{t: t}, nil
}

// Hint は内容語の基本形と読みを並べた文字列を返します (例: "走る(ハシル), 速い(ハヤイ)")。
// 内容語がなければ空文字列。
func (a *kagomeAnalyzer) Hint(phrase string) (string, error) {
	var parts []string
	seen := make(map[string]bool)

	for _, token := range a.t.Tokenize(phrase) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		// IPA: 0=品詞, 6=基本形, 7=読み
		features := token.Features()
		if len(features) == 0 || !contentPOS[features[0]] {
			continue
		}

		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		if seen[base] {
			continue
		}
		seen[base] = true

		if len(features) > 7 && features[7] != "*" {
			parts = append(parts, fmt.Sprintf("%s(%s)", base, features[7]))
		} else {
			parts = append(parts, base)
		}
	}
	return strings.Join(parts, ", "), nil
}
