// internal/vocab/query.go
package vocab

import (
	"strings"
	"time"

	"jpn_vocab_keep/internal/leitner"
	"jpn_vocab_keep/internal/model"
)

// このファイルの関数はすべてコレクションに対する純粋・読み取り専用の
// 全域関数です。抽出結果は入力順 (挿入順) を保ちます。

// DueToday は本日復習対象のレコードを返します。
// スケジュールを持たないレコードは box 1・本日復習として実体化した
// コピーを返すため、入力は変更されず、2回呼んでも対象集合は同じです。
func DueToday(list []model.VocabularyRecord, now time.Time) []model.VocabularyRecord {
	due := make([]model.VocabularyRecord, 0)
	for _, rec := range list {
		rec = leitner.Initialize(rec, now)
		if leitner.IsDue(rec, now) {
			due = append(due, rec)
		}
	}
	return due
}

// Starred はスター付きレコードのみを返します。
func Starred(list []model.VocabularyRecord) []model.VocabularyRecord {
	out := make([]model.VocabularyRecord, 0)
	for _, rec := range list {
		if rec.Starred {
			out = append(out, rec)
		}
	}
	return out
}

// Search は正規化 (記号除去 + 小文字化) した部分文字列一致で検索します。
// 漢字・読み・主意味・漢越音のいずれかにマッチすれば対象です。
// 空クエリは全件にマッチします。
func Search(list []model.VocabularyRecord, query string) []model.VocabularyRecord {
	q := NormalizeSearch(query)
	if q == "" {
		out := make([]model.VocabularyRecord, len(list))
		copy(out, list)
		return out
	}

	out := make([]model.VocabularyRecord, 0)
	for _, rec := range list {
		for _, field := range []string{rec.Kanji, rec.Reading, rec.PrimaryMeaning, rec.SinoVietnamese} {
			if field != "" && strings.Contains(NormalizeSearch(field), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// BoxDistribution はボックスごとの件数を返します。
// 1..5 の全キーを常に含み、スケジュールなしは box 1 に数えます。
func BoxDistribution(list []model.VocabularyRecord) map[int]int {
	dist := make(map[int]int, model.MaxBox)
	for b := model.MinBox; b <= model.MaxBox; b++ {
		dist[b] = 0
	}
	for _, rec := range list {
		box := model.MinBox
		if rec.Schedule != nil {
			box = rec.Schedule.Box
		}
		if box < model.MinBox || box > model.MaxBox {
			box = model.MinBox
		}
		dist[box]++
	}
	return dist
}

// Stats はボックス分布と集計値 (習得済み・新規・学習中・本日対象) を返します。
func Stats(list []model.VocabularyRecord, now time.Time) model.LeitnerStats {
	stats := model.LeitnerStats{
		Boxes: BoxDistribution(list),
		Total: len(list),
		Due:   len(DueToday(list, now)),
	}
	for _, rec := range list {
		box := model.MinBox
		reviews := 0
		if rec.Schedule != nil {
			box = rec.Schedule.Box
			reviews = rec.Schedule.TotalReviews
		}
		if box >= model.MaxBox {
			stats.Mastered++
		}
		if reviews == 0 {
			stats.Newcomer++
		} else if box < model.MaxBox {
			stats.Learning++
		}
	}
	return stats
}
