// internal/leitner/leitner_test.go
package leitner

import (
	"testing"
	"time"

	"jpn_vocab_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func scheduledRecord(box, streak, total int, next time.Time) model.VocabularyRecord {
	return model.VocabularyRecord{
		ID:      "w1",
		Kanji:   "年",
		Reading: "とし",
		Schedule: &model.LeitnerProgress{
			Box:            box,
			NextReviewDate: next,
			CorrectStreak:  streak,
			TotalReviews:   total,
		},
	}
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		name string
		box  int
		want int
	}{
		{name: "box1は毎日", box: 1, want: 1},
		{name: "box2は2日ごと", box: 2, want: 2},
		{name: "box3は毎週", box: 3, want: 7},
		{name: "box4は隔週", box: 4, want: 14},
		{name: "box5は毎月", box: 5, want: 30},
		{name: "範囲外は1日扱い", box: 0, want: 1},
		{name: "範囲外(上)も1日扱い", box: 9, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalDays(tt.box))
		})
	}
}

func TestInitialize(t *testing.T) {
	t.Run("正常系: スケジュールなしはbox1・本日復習で実体化", func(t *testing.T) {
		rec := model.VocabularyRecord{ID: "w1", Reading: "とし"}
		got := Initialize(rec, testNow)

		require.NotNil(t, got.Schedule)
		assert.Equal(t, model.MinBox, got.Schedule.Box)
		assert.Equal(t, StartOfDay(testNow), got.Schedule.NextReviewDate)
		assert.Equal(t, 0, got.Schedule.CorrectStreak)
		assert.Equal(t, 0, got.Schedule.TotalReviews)
		assert.Nil(t, got.Schedule.LastReviewedAt)

		// 入力レコードは変更されない
		assert.Nil(t, rec.Schedule)
	})

	t.Run("正常系: 既存スケジュールはそのまま", func(t *testing.T) {
		next := testNow.AddDate(0, 0, 7)
		rec := scheduledRecord(3, 2, 5, next)
		got := Initialize(rec, testNow)

		require.NotNil(t, got.Schedule)
		assert.Equal(t, 3, got.Schedule.Box)
		assert.Equal(t, next, got.Schedule.NextReviewDate)
	})
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		rec        model.VocabularyRecord
		correct    bool
		wantBox    int
		wantStreak int
		wantTotal  int
	}{
		{
			name:       "正常系: 正解でボックスが1つ上がる",
			rec:        scheduledRecord(2, 1, 3, testNow),
			correct:    true,
			wantBox:    3,
			wantStreak: 2,
			wantTotal:  4,
		},
		{
			name:       "正常系: box5で正解しても5のまま",
			rec:        scheduledRecord(5, 10, 20, testNow),
			correct:    true,
			wantBox:    5,
			wantStreak: 11,
			wantTotal:  21,
		},
		{
			name:       "正常系: 不正解はbox1へ無条件リセット",
			rec:        scheduledRecord(4, 7, 9, testNow),
			correct:    false,
			wantBox:    1,
			wantStreak: 0,
			wantTotal:  10,
		},
		{
			name:       "正常系: box1で不正解してもbox1",
			rec:        scheduledRecord(1, 0, 0, testNow),
			correct:    false,
			wantBox:    1,
			wantStreak: 0,
			wantTotal:  1,
		},
		{
			name:       "正常系: スケジュールなしでも回答できる (box1扱い)",
			rec:        model.VocabularyRecord{ID: "w2", Reading: "いま"},
			correct:    true,
			wantBox:    2,
			wantStreak: 1,
			wantTotal:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.rec, tt.correct, testNow)

			require.NotNil(t, got.Schedule)
			assert.Equal(t, tt.wantBox, got.Schedule.Box)
			assert.Equal(t, tt.wantStreak, got.Schedule.CorrectStreak)
			assert.Equal(t, tt.wantTotal, got.Schedule.TotalReviews)

			// 次回復習日は当日0時 + 新ボックスの間隔
			wantNext := StartOfDay(testNow).AddDate(0, 0, IntervalDays(tt.wantBox))
			assert.Equal(t, wantNext, got.Schedule.NextReviewDate)

			require.NotNil(t, got.Schedule.LastReviewedAt)
			assert.Equal(t, testNow, *got.Schedule.LastReviewedAt)
		})
	}

	t.Run("正常系: 入力レコードのスケジュールは変更されない", func(t *testing.T) {
		rec := scheduledRecord(2, 1, 3, testNow)
		_ = Apply(rec, true, testNow)
		assert.Equal(t, 2, rec.Schedule.Box)
		assert.Equal(t, 3, rec.Schedule.TotalReviews)
	})
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name string
		rec  model.VocabularyRecord
		want bool
	}{
		{
			name: "正常系: スケジュールなしは常に復習対象",
			rec:  model.VocabularyRecord{ID: "w1"},
			want: true,
		},
		{
			name: "正常系: 本日が復習日なら対象",
			rec:  scheduledRecord(2, 0, 1, StartOfDay(testNow)),
			want: true,
		},
		{
			name: "正常系: 同日の時刻違いでも対象 (日付粒度)",
			rec:  scheduledRecord(2, 0, 1, testNow.Add(5*time.Hour)),
			want: true,
		},
		{
			name: "正常系: 復習日を過ぎていれば対象",
			rec:  scheduledRecord(3, 0, 1, testNow.AddDate(0, 0, -3)),
			want: true,
		},
		{
			name: "正常系: 復習日が明日なら対象外",
			rec:  scheduledRecord(3, 0, 1, testNow.AddDate(0, 0, 1)),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDue(tt.rec, testNow))
		})
	}
}
