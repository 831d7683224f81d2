// internal/importer/parser.go
package importer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"jpn_vocab_keep/internal/model"
)

// 検出スキーマ名
const (
	SchemaLongForm = "long_form"       // 1行 = 1つの意味、word_id でまとめる
	SchemaFlexible = "flexible_header" // エイリアス表 + JSONセル
	SchemaHeadless = "no_header"       // 最大6列の位置指定
)

// long-form の複数値セパレータ: リストは "||"、原文::訳 の組は "::"。
const (
	listSeparator = "||"
	pairSeparator = "::"
)

// ParseResult はパーサの出力です。
type ParseResult struct {
	Records []model.VocabularyRecord
	Schema  string
}

// NoValidRecordsError はデコードには成功したがどのスキーマでも
// 有効なレコードが1件も得られなかったことを表します。
// ユーザーが列名を直せるよう、検出したヘッダ名を保持します。
type NoValidRecordsError struct {
	Headers []string
}

func (e *NoValidRecordsError) Error() string {
	if len(e.Headers) == 0 {
		return "no valid records found in CSV (no headers detected)"
	}
	return fmt.Sprintf("no valid records found in CSV (detected headers: %s)", strings.Join(e.Headers, ", "))
}

// Parse はスキーマを優先順 (long-form → 柔軟ヘッダ → ヘッダなし) で試し、
// 有効なレコードを1件以上生んだ最初のスキーマの結果を返します。
// どのスキーマも1件も生まなければ *NoValidRecordsError を返します。
func Parse(table *RawTable) (*ParseResult, error) {
	if table != nil && len(table.Rows) > 0 {
		if table.HasHeaders(longFormRequired...) {
			if records := parseLongForm(table.HeaderRows()); len(records) > 0 {
				return &ParseResult{Records: records, Schema: SchemaLongForm}, nil
			}
		} else {
			if records := parseFlexible(table.HeaderRows()); len(records) > 0 {
				return &ParseResult{Records: records, Schema: SchemaFlexible}, nil
			}
		}
		// ヘッダ行が使い物にならなかった場合は全行を位置指定で読む
		if records := parseHeadless(table.Rows); len(records) > 0 {
			return &ParseResult{Records: records, Schema: SchemaHeadless}, nil
		}
	}

	var headers []string
	if table != nil {
		headers = table.Headers
	}
	return nil, &NoValidRecordsError{Headers: headers}
}

// parseLongForm は word_id を共有する行を1レコードに畳み込みます。
// 各行は1つの Sense (意味 + 例文 + コロケーション) を寄与します。
// 意味が空、または漢字と読みが両方空の行は、その行だけ捨てます
// (レコード全体は捨てない)。Sense は sense_index 昇順で確定します。
func parseLongForm(rows []map[string]string) []model.VocabularyRecord {
	byID := make(map[string]*model.VocabularyRecord)
	order := make([]string, 0)

	for _, row := range rows {
		wordID := strings.TrimSpace(row["word_id"])
		if wordID == "" {
			continue
		}

		kanji := strings.TrimSpace(row["kanji"])
		reading := strings.TrimSpace(row["hiragana"])
		meaning := strings.TrimSpace(row["meaning_vi"])
		sino := strings.TrimSpace(row["sino_vietnamese"])
		if meaning == "" || (kanji == "" && reading == "") {
			continue
		}

		rec, ok := byID[wordID]
		if !ok {
			rec = &model.VocabularyRecord{
				ID:      wordID,
				Kanji:   firstNonEmpty(kanji, reading),
				Reading: reading,
			}
			byID[wordID] = rec
			order = append(order, wordID)
		}
		if rec.Kanji == "" && kanji != "" {
			rec.Kanji = kanji
		}
		if rec.Reading == "" && reading != "" {
			rec.Reading = reading
		}
		if rec.SinoVietnamese == "" && sino != "" {
			rec.SinoVietnamese = sino
		}

		sense := model.Sense{
			Index:    senseIndex(row["sense_index"], len(rec.Senses)+1),
			Meaning:  meaning,
			Examples: zipExamples(splitList(row["examples_jp"]), splitList(row["examples_vi"])),
		}
		for tag := range collocationJSONKeys {
			if pairs := splitPairs(row[tag]); len(pairs) > 0 {
				*sense.Collocations.ByTag(tag) = pairs
			}
		}
		rec.Senses = append(rec.Senses, sense)
	}

	records := make([]model.VocabularyRecord, 0, len(order))
	for _, id := range order {
		rec := byID[id]
		sortSenses(rec.Senses)
		rec.RebuildFromSenses()
		if rec.IsImportable() {
			records = append(records, *rec)
		}
	}
	return records
}

// parseFlexible はエイリアス表で列を正準フィールドに写します。
// meanings / examples / 各コロケーショングループはJSONセルとして
// 緩く解釈し、JSONとして壊れているセルは「列なし」として黙って無視します。
// 意味と読みが非空のレコードのみ残します。
func parseFlexible(rows []map[string]string) []model.VocabularyRecord {
	records := make([]model.VocabularyRecord, 0, len(rows))

	for _, row := range rows {
		kanji := pickByKeys(row, kanjiKeys)
		reading := pickByKeys(row, readingKeys)
		meaning := pickByKeys(row, meaningKeys)

		rec := model.VocabularyRecord{
			ID:             uuid.NewString(),
			Kanji:          firstNonEmpty(kanji, reading),
			Reading:        reading,
			PrimaryMeaning: meaning,
			SinoVietnamese: pickByKeys(row, sinoKeys),
		}

		if cell := pickByKeys(row, meaningsJSONKeys); cell != "" {
			var meanings []string
			if decodeJSONCell(cell, &meanings) && len(meanings) > 0 {
				rec.AdditionalMeanings = meanings
				if rec.PrimaryMeaning == "" {
					rec.PrimaryMeaning = meanings[0]
				}
			}
		}
		if cell := pickByKeys(row, examplesJSONKeys); cell != "" {
			var examples []model.Pair
			if decodeJSONCell(cell, &examples) && len(examples) > 0 {
				rec.Examples = examples
			}
		}
		for tag, keys := range collocationJSONKeys {
			cell := pickByKeys(row, keys)
			if cell == "" {
				continue
			}
			var pairs []model.Pair
			if decodeJSONCell(cell, &pairs) && len(pairs) > 0 {
				*rec.Collocations.ByTag(tag) = pairs
			}
		}

		// 旧v1形式の例文列 (JSON列がない場合のみ)
		if len(rec.Examples) == 0 {
			if sentence := pickByKeys(row, exampleSentenceKeys); sentence != "" {
				rec.Examples = []model.Pair{{JP: sentence, VI: pickByKeys(row, exampleMeaningKeys)}}
			}
		}

		rec.Senses = synthesizeSense(rec)
		if rec.IsImportable() {
			records = append(records, rec)
		}
	}
	return records
}

// parseHeadless は最大6列を固定順でフィールドに写します:
// 漢字, 読み, 意味, 漢越音, 例文, 例文の意味。
func parseHeadless(rows [][]string) []model.VocabularyRecord {
	records := make([]model.VocabularyRecord, 0, len(rows))

	for _, row := range rows {
		cell := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		kanji := cell(0)
		reading := cell(1)

		rec := model.VocabularyRecord{
			ID:             uuid.NewString(),
			Kanji:          firstNonEmpty(kanji, reading),
			Reading:        reading,
			PrimaryMeaning: cell(2),
			SinoVietnamese: cell(3),
		}
		if sentence := cell(4); sentence != "" {
			rec.Examples = []model.Pair{{JP: sentence, VI: cell(5)}}
		}

		rec.Senses = synthesizeSense(rec)
		if rec.IsImportable() {
			records = append(records, rec)
		}
	}
	return records
}

// synthesizeSense は単一意味スキーマのレコードに index 1 の Sense を合成します。
// ID単位の蓄積マージが全スキーマ由来のレコードで機能するようにするためです。
func synthesizeSense(rec model.VocabularyRecord) []model.Sense {
	meaning := rec.PrimaryMeaning
	if meaning == "" && len(rec.AdditionalMeanings) > 0 {
		meaning = rec.AdditionalMeanings[0]
	}
	if meaning == "" {
		return nil
	}
	return []model.Sense{{
		Index:        1,
		Meaning:      meaning,
		Examples:     rec.Examples,
		Collocations: rec.Collocations,
	}}
}

// sortSenses は sense_index 昇順の安定ソートです。出力の決定性のため、
// 同一レコード内の行順は index が同じ場合のみ保たれます。
func sortSenses(senses []model.Sense) {
	sort.SliceStable(senses, func(i, j int) bool {
		return senses[i].Index < senses[j].Index
	})
}

// decodeJSONCell はセルをJSONとして試行デコードし、
// 失敗は「値なし」として扱います (行にもバッチにもエラーを伝播しない)。
func decodeJSONCell(cell string, dst any) bool {
	return json.Unmarshal([]byte(cell), dst) == nil
}

func senseIndex(raw string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
		return n
	}
	return fallback
}

// splitList は "||" 区切りのリストを trim して空要素を除いて返します。
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitPairs は "||" 区切りの各要素を "原文::訳" として分解します。
// 原文が空の要素は捨てます。訳は省略可。
func splitPairs(s string) []model.Pair {
	items := splitList(s)
	out := make([]model.Pair, 0, len(items))
	for _, item := range items {
		jp, vi, _ := strings.Cut(item, pairSeparator)
		jp = strings.TrimSpace(jp)
		if jp == "" {
			continue
		}
		out = append(out, model.Pair{JP: jp, VI: strings.TrimSpace(vi)})
	}
	return out
}

// zipExamples はJP列とVI列を位置で対にします。片側だけの行も残します。
func zipExamples(jp, vi []string) []model.Pair {
	n := len(jp)
	if len(vi) > n {
		n = len(vi)
	}
	out := make([]model.Pair, 0, n)
	for i := 0; i < n; i++ {
		var p model.Pair
		if i < len(jp) {
			p.JP = jp[i]
		}
		if i < len(vi) {
			p.VI = vi[i]
		}
		if p.JP == "" && p.VI == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
