// internal/model/review.go
package model

// ReviewWordResponse は復習単語リストのレスポンスDTO
type ReviewWordResponse struct {
	ID             string `json:"id"`
	Kanji          string `json:"kanji"`
	Reading        string `json:"reading"`
	PrimaryMeaning string `json:"primary_meaning"` // 正解表示用に含める
	SinoVietnamese string `json:"sino_vietnamese,omitempty"`
	Examples       []Pair `json:"examples,omitempty"`
	Box            int    `json:"box"`
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// LeitnerStats はボックス分布と集計値のレスポンスDTO
type LeitnerStats struct {
	Boxes    map[int]int `json:"boxes"`    // box -> 件数 (1..5 全キーを常に含む)
	Total    int         `json:"total"`
	Due      int         `json:"due"`      // 本日復習対象
	Mastered int         `json:"mastered"` // box == 5
	Newcomer int         `json:"newcomer"` // total_reviews == 0 (未スケジュール含む)
	Learning int         `json:"learning"` // total_reviews > 0 かつ box < 5
}
