// internal/vocab/normalize.go

// Package vocab は語彙コレクションに対する純粋な操作
// (マージエンジンと検索・抽出レイヤ) を提供します。
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"jpn_vocab_keep/internal/model"
)

// ベトナム語の声調記号を安定して扱うため、NFD 分解で
// 結合記号 (Mn) を除去してから再合成します。
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics は声調記号等のダイアクリティカルマークを除去します。
// 変換に失敗した場合は入力をそのまま返します。
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeKey は自然キー用の正規化: 記号除去 + trim + 小文字化。
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(StripDiacritics(s)))
}

// NormalizeSearch は検索クエリ・検索対象の正規化。NormalizeKey と同じ規則。
func NormalizeSearch(s string) string {
	return NormalizeKey(s)
}

// NormalizeHeader はCSVヘッダ名の正規化: BOM除去 + 記号除去 +
// trim + 小文字化 + 連続空白の畳み込み。
func NormalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(strings.TrimSpace(StripDiacritics(s)))
	return strings.Join(strings.Fields(s), " ")
}

// NaturalKey は「同じ単語」を独立したインポートをまたいで検出するための
// 正規化済み (漢字, 読み) キーです。
func NaturalKey(rec model.VocabularyRecord) string {
	return NormalizeKey(rec.Kanji) + "|" + NormalizeKey(rec.Reading)
}
