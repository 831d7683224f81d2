// internal/importer/aliases.go
package importer

import "strings"

// 柔軟ヘッダスキーマのエイリアス表。
// ヘッダ名はダイアクリティカル除去 + 小文字化済みの形で照合するため、
// ここにはベトナム語の声調記号を落とした形を載せています。
// 行の値は、各リストの先頭から順に見て最初に trim 後非空となる列を採用します。

var kanjiKeys = []string{"kanji", "chu kanji", "chu", "word", "kanji/kana"}

var readingKeys = []string{"hiragana", "kana", "furigana", "reading", "yomi", "phien am", "phien am hiragana"}

var meaningKeys = []string{"nghia", "nghia viet", "meaning", "translation", "viet", "vietnamese", "vi"}

var sinoKeys = []string{"am han viet", "han viet", "hanviet", "amhanviet", "sino", "sino_vietnamese"}

// 旧v1形式の例文列
var exampleSentenceKeys = []string{"cau mau", "mau cau", "vi du", "example", "sentence", "sample", "cau vi du"}

var exampleMeaningKeys = []string{"y nghia cau mau", "y nghia cau", "nghia cau mau", "giai nghia", "sentence meaning", "example meaning"}

// v2形式: 1セルにJSONを入れる列
var meaningsJSONKeys = []string{"meanings", "nghia json", "nghia list", "nghia[]"}

var examplesJSONKeys = []string{"examples", "vi du json", "cau mau json", "examples json"}

// コロケーショングループのJSON列 (タグごとの別名)
var collocationJSONKeys = map[string][]string{
	"ren":   {"ren", "連"},
	"go":    {"go", "合"},
	"rui":   {"rui", "類"},
	"kan":   {"kan", "関"},
	"tai":   {"tai", "対"},
	"kanyo": {"kanyo", "慣"},
	"mei":   {"mei", "名"},
}

// long-form スキーマの判別に必要な列
var longFormRequired = []string{"word_id", "sense_index", "meaning_vi"}

// pickByKeys はエイリアスリストの先頭から順に、trim 後非空の値を返します。
func pickByKeys(row map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}
