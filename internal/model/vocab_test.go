// internal/model/vocab_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyRecord_RebuildFromSenses(t *testing.T) {
	t.Run("正常系: 先頭Senseの意味が主意味、全意味がリストに並ぶ", func(t *testing.T) {
		rec := VocabularyRecord{
			Senses: []Sense{
				{Index: 1, Meaning: "năm", Examples: []Pair{{JP: "今年", VI: "năm nay"}}},
				{Index: 2, Meaning: "tuổi", Examples: []Pair{{JP: "年を取る", VI: "lớn tuổi"}}},
			},
		}
		rec.RebuildFromSenses()

		assert.Equal(t, "năm", rec.PrimaryMeaning)
		assert.Equal(t, []string{"năm", "tuổi"}, rec.AdditionalMeanings)
		require.Len(t, rec.Examples, 2)
		assert.Equal(t, "今年", rec.Examples[0].JP)
	})

	t.Run("正常系: Sensesが空なら何もしない", func(t *testing.T) {
		rec := VocabularyRecord{PrimaryMeaning: "giữ nguyên"}
		rec.RebuildFromSenses()
		assert.Equal(t, "giữ nguyên", rec.PrimaryMeaning)
	})
}

func TestVocabularyRecord_IsImportable(t *testing.T) {
	tests := []struct {
		name string
		rec  VocabularyRecord
		want bool
	}{
		{
			name: "正常系: 読みと主意味があれば可",
			rec:  VocabularyRecord{Reading: "とし", PrimaryMeaning: "năm"},
			want: true,
		},
		{
			name: "正常系: 漢字なしでも読みと意味があれば可",
			rec:  VocabularyRecord{Reading: "とし", AdditionalMeanings: []string{"tuổi"}},
			want: true,
		},
		{
			name: "異常系: 読みが空なら不可",
			rec:  VocabularyRecord{Kanji: "年", PrimaryMeaning: "năm"},
			want: false,
		},
		{
			name: "異常系: 意味がなければ不可",
			rec:  VocabularyRecord{Kanji: "年", Reading: "とし"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.IsImportable())
		})
	}
}

func TestCollocationGroups(t *testing.T) {
	t.Run("正常系: ByTagは全タグを解決、未知はnil", func(t *testing.T) {
		var g CollocationGroups
		for _, tag := range CollocationTags {
			assert.NotNil(t, g.ByTag(tag), tag)
		}
		assert.Nil(t, g.ByTag("unknown"))
	})

	t.Run("正常系: MergeFromは重複を排除して取り込む", func(t *testing.T) {
		a := CollocationGroups{Rui: []Pair{{JP: "歳", VI: "tuổi"}}}
		b := CollocationGroups{
			Rui: []Pair{{JP: "歳", VI: "tuổi"}, {JP: "年齢", VI: "tuổi tác"}},
			Tai: []Pair{{JP: "若い", VI: "trẻ"}},
		}
		a.MergeFrom(b)

		assert.Len(t, a.Rui, 2)
		assert.Len(t, a.Tai, 1)
	})
}

func TestPutVocabRequest_ApplyTo(t *testing.T) {
	t.Run("正常系: index1の語義を置き換え他は保持", func(t *testing.T) {
		rec := VocabularyRecord{
			ID:      "w1",
			Kanji:   "年",
			Reading: "とし",
			Senses: []Sense{
				{Index: 1, Meaning: "năm (cũ)"},
				{Index: 2, Meaning: "tuổi"},
			},
			Schedule: &LeitnerProgress{Box: 3},
		}
		req := PutVocabRequest{Kanji: "年", Reading: "とし", Meaning: "năm"}

		req.ApplyTo(&rec)

		require.Len(t, rec.Senses, 2)
		assert.Equal(t, "năm", rec.Senses[0].Meaning)
		assert.Equal(t, "tuổi", rec.Senses[1].Meaning)
		assert.Equal(t, "năm", rec.PrimaryMeaning)
		// IDと進捗は変更されない
		assert.Equal(t, "w1", rec.ID)
		assert.Equal(t, 3, rec.Schedule.Box)
	})
}
