// internal/vocab/merge.go
package vocab

import (
	"sort"

	"github.com/google/uuid"

	"jpn_vocab_keep/internal/model"
)

// SmartMerge は自然キー (正規化済み 漢字|読み) でインポートバッチを
// 既存コレクションに統合します。CSVを既存デッキに取り込む
// ユーザー向け操作はこちらです。
//
// キーが一致した場合、incoming がフィールド単位で既存を置き換えますが、
// ID は常に既存のものを保持します。preserveProgress が true のときは
// さらに既存の Schedule を保持し (既存が nil なら incoming のものを採用)、
// Starred は既存と incoming の OR になります。
// キーが一致しない場合は末尾に追加し、incoming に ID がなければ新規発番します。
//
// 出力順: 既存レコードの元の順序、その後に新規レコードをバッチ順で並べます。
// マージエンジンは整形済みレコードに対して全域的で、ここでは検証しません。
func SmartMerge(existing, incoming []model.VocabularyRecord, preserveProgress bool) []model.VocabularyRecord {
	result := make([]model.VocabularyRecord, len(existing))
	copy(result, existing)

	index := make(map[string]int, len(existing))
	for i, rec := range existing {
		index[NaturalKey(rec)] = i
	}

	for _, inc := range incoming {
		key := NaturalKey(inc)
		if i, ok := index[key]; ok {
			old := result[i]
			next := inc
			next.ID = old.ID // 既存IDを保持して参照を壊さない
			next.Position = old.Position
			next.CreatedAt = old.CreatedAt
			if preserveProgress {
				next.Starred = old.Starred || inc.Starred
				if old.Schedule != nil {
					next.Schedule = old.Schedule.Clone()
				}
			}
			result[i] = next
			continue
		}
		if inc.ID == "" {
			inc.ID = uuid.NewString()
		}
		index[key] = len(result)
		result = append(result, inc)
	}

	return result
}

// MergeByID はレコードIDの厳密一致で long-form バッチを蓄積マージします。
// 同じ単語集合の増分バッチ (例: 2つ目の意味を追加した修正CSVの再インポート)
// を取り込むための操作で、自然キーのマージとは別物です。
//
// ID が一致した場合、Sense は index 単位でマージされます:
// 同じ index の incoming Sense が既存を上書きし (インポートバッチが正)、
// 新しい index は追加されます。結果は常に index 昇順です。
// 既存の Schedule は無条件に保持されます (preserveProgress の指定に依らず)。
// ID が一致しないレコードはそのまま追加されます。
func MergeByID(existing, incoming []model.VocabularyRecord) []model.VocabularyRecord {
	result := make([]model.VocabularyRecord, len(existing))
	copy(result, existing)

	index := make(map[string]int, len(existing))
	for i, rec := range existing {
		index[rec.ID] = i
	}

	for _, inc := range incoming {
		i, ok := index[inc.ID]
		if !ok {
			if inc.ID == "" {
				inc.ID = uuid.NewString()
			}
			index[inc.ID] = len(result)
			result = append(result, inc)
			continue
		}

		old := result[i]
		merged := inc
		merged.ID = old.ID
		merged.Position = old.Position
		merged.CreatedAt = old.CreatedAt
		merged.Starred = old.Starred || inc.Starred
		merged.Schedule = old.Schedule.Clone() // 学習進捗は決して上書きしない
		if merged.Kanji == "" {
			merged.Kanji = old.Kanji
		}
		if merged.Reading == "" {
			merged.Reading = old.Reading
		}
		if merged.SinoVietnamese == "" {
			merged.SinoVietnamese = old.SinoVietnamese
		}
		merged.Senses = MergeSenses(old.Senses, inc.Senses)
		merged.RebuildFromSenses()
		result[i] = merged
	}

	return result
}

// MergeSenses は Sense リストを index 単位でマージします。
// 同じ index は b 側が上書きし、結果は index 昇順で返します。
func MergeSenses(a, b []model.Sense) []model.Sense {
	byIndex := make(map[int]model.Sense, len(a)+len(b))
	order := make([]int, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := byIndex[s.Index]; !ok {
			order = append(order, s.Index)
		}
		byIndex[s.Index] = s
	}
	for _, s := range b {
		if _, ok := byIndex[s.Index]; !ok {
			order = append(order, s.Index)
		}
		byIndex[s.Index] = s
	}

	sort.Ints(order)
	merged := make([]model.Sense, 0, len(order))
	for _, idx := range order {
		merged = append(merged, byIndex[idx])
	}
	return merged
}
