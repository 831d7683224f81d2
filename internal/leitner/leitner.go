// internal/leitner/leitner.go

// Package leitner は Leitner 方式の間隔反復スケジューラです。
// (レコード, 正誤, 現在時刻) -> 更新済みレコード の純粋関数のみで、
// I/O も内部状態も持ちません。
package leitner

import (
	"time"

	"jpn_vocab_keep/internal/model"
)

// ボックスごとの復習間隔 (暦日)。
// box 1: 毎日, 2: 2日ごと, 3: 毎週, 4: 隔週, 5: 毎月。
var intervals = map[int]int{
	1: 1,
	2: 2,
	3: 7,
	4: 14,
	5: 30,
}

// IntervalDays はボックスの復習間隔を返します。範囲外は1日。
func IntervalDays(box int) int {
	if d, ok := intervals[box]; ok {
		return d
	}
	return 1
}

// StartOfDay は時刻成分を落として日付の 00:00 に正規化します。
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Initialize はスケジュールを持たないレコードに box 1・本日復習の
// 進捗を実体化します。既にスケジュールがあればそのまま返します。
func Initialize(rec model.VocabularyRecord, now time.Time) model.VocabularyRecord {
	if rec.Schedule != nil {
		return rec
	}
	rec.Schedule = &model.LeitnerProgress{
		Box:            model.MinBox,
		NextReviewDate: StartOfDay(now), // 新規は即日復習対象
		CorrectStreak:  0,
		TotalReviews:   0,
	}
	return rec
}

// Apply は回答結果を反映した新しいレコードを返します。
// 正解: box' = min(5, box+1), streak+1。
// 不正解: box' = 1 (部分点なしの無条件リセット), streak = 0。
// 正誤に関わらず totalReviews+1, lastReviewedAt = now,
// nextReviewDate = 当日0時 + 新ボックスの間隔。
func Apply(rec model.VocabularyRecord, correct bool, now time.Time) model.VocabularyRecord {
	rec = Initialize(rec, now)
	prev := rec.Schedule

	newBox := model.MinBox
	newStreak := 0
	if correct {
		newBox = prev.Box + 1
		if newBox > model.MaxBox {
			newBox = model.MaxBox
		}
		newStreak = prev.CorrectStreak + 1
	}

	reviewedAt := now
	rec.Schedule = &model.LeitnerProgress{
		Box:            newBox,
		NextReviewDate: StartOfDay(now).AddDate(0, 0, IntervalDays(newBox)),
		CorrectStreak:  newStreak,
		TotalReviews:   prev.TotalReviews + 1,
		LastReviewedAt: &reviewedAt,
	}
	return rec
}

// IsDue は本日復習対象かどうかを返します。
// スケジュールなし、または nextReviewDate <= 今日 (日付粒度) で true。
func IsDue(rec model.VocabularyRecord, now time.Time) bool {
	if rec.Schedule == nil {
		return true
	}
	return !StartOfDay(rec.Schedule.NextReviewDate).After(StartOfDay(now))
}
