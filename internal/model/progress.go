// internal/model/progress.go
package model

import "time"

// Leitner ボックスの範囲。1 = 未習得、5 = 習得済み。
const (
	MinBox = 1
	MaxBox = 5
)

// LeitnerProgress は語彙レコードに埋め込まれる学習進捗サブレコードです。
// nil の場合は「新規」(box 1・即復習対象) として扱われ、
// スケジューラが最初に触れたときに実体化されます。
type LeitnerProgress struct {
	Box            int        `json:"box"`
	NextReviewDate time.Time  `json:"next_review"` // 日付粒度で比較 (時刻は無視)
	CorrectStreak  int        `json:"correct_streak"`
	TotalReviews   int        `json:"total_reviews"`
	LastReviewedAt *time.Time `json:"last_reviewed,omitempty"`
}

// Clone は進捗のコピーを返します。レコードを値で扱う際の
// ポインタ共有を避けるために使います。
func (p *LeitnerProgress) Clone() *LeitnerProgress {
	if p == nil {
		return nil
	}
	cp := *p
	if p.LastReviewedAt != nil {
		t := *p.LastReviewedAt
		cp.LastReviewedAt = &t
	}
	return &cp
}
