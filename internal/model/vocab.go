// internal/model/vocab.go
package model

import (
	"time"
)

// Pair は日本語テキストとベトナム語訳の組を表します。
// 例文・コロケーションの両方で共通の形です（訳は省略可）。
type Pair struct {
	JP string `json:"jp"`
	VI string `json:"vi,omitempty"`
}

// Key は重複排除用のキー (原文+訳の完全一致)
func (p Pair) Key() string {
	return p.JP + "\x00" + p.VI
}

// CollocationGroups は7つの関係タグへの固定マッピングです。
// 旧データの「存在するキーだけ持つ」動的な形はやめて、
// 常に全タグを持つ閉じた列挙として扱います。
type CollocationGroups struct {
	Ren   []Pair `json:"ren"`   // 連: associated
	Go    []Pair `json:"go"`    // 合: combined
	Rui   []Pair `json:"rui"`   // 類: synonym
	Kan   []Pair `json:"kan"`   // 関: related
	Tai   []Pair `json:"tai"`   // 対: antonym
	Kanyo []Pair `json:"kanyo"` // 慣: idiomatic
	Mei   []Pair `json:"mei"`   // 名: proper-noun
}

// CollocationTags はタグの正規の並び順です。
var CollocationTags = []string{"ren", "go", "rui", "kan", "tai", "kanyo", "mei"}

// ByTag はタグ名に対応するスライスへのポインタを返します。
// 未知のタグは nil。
func (g *CollocationGroups) ByTag(tag string) *[]Pair {
	switch tag {
	case "ren":
		return &g.Ren
	case "go":
		return &g.Go
	case "rui":
		return &g.Rui
	case "kan":
		return &g.Kan
	case "tai":
		return &g.Tai
	case "kanyo":
		return &g.Kanyo
	case "mei":
		return &g.Mei
	}
	return nil
}

// MergeFrom は other の各グループを重複排除しながら取り込みます。
func (g *CollocationGroups) MergeFrom(other CollocationGroups) {
	for _, tag := range CollocationTags {
		dst := g.ByTag(tag)
		src := *other.ByTag(tag)
		if len(src) == 0 {
			continue
		}
		*dst = appendUniquePairs(*dst, src)
	}
}

// IsEmpty は全グループが空かどうかを返します。
func (g CollocationGroups) IsEmpty() bool {
	for _, tag := range CollocationTags {
		if len(*g.ByTag(tag)) > 0 {
			return false
		}
	}
	return true
}

func appendUniquePairs(dst, src []Pair) []Pair {
	seen := make(map[string]bool, len(dst))
	for _, p := range dst {
		seen[p.Key()] = true
	}
	for _, p := range src {
		if !seen[p.Key()] {
			dst = append(dst, p)
			seen[p.Key()] = true
		}
	}
	return dst
}

// Sense は多義語の1つの意味を表します。
// long-form CSV では1行が1つの Sense に対応します。
type Sense struct {
	Index        int               `json:"index"` // 1,2,3...
	Meaning      string            `json:"meaning"`
	Examples     []Pair            `json:"examples"`
	Collocations CollocationGroups `json:"collocations"`
}

// VocabularyRecord は語彙エントリ本体です。
// ID は不透明な一意識別子（UUID または long-form の word_id）で、
// 編集・マージをまたいで安定です。
type VocabularyRecord struct {
	ID                 string            `gorm:"primaryKey" json:"id"`
	Kanji              string            `gorm:"not null;index" json:"kanji"`
	Reading            string            `gorm:"not null;index" json:"reading"` // ひらがな読み。クイズに使うため必須
	PrimaryMeaning     string            `gorm:"not null" json:"primary_meaning"`
	AdditionalMeanings []string          `gorm:"serializer:json" json:"additional_meanings,omitempty"`
	SinoVietnamese     string            `json:"sino_vietnamese,omitempty"` // 漢越音 (Âm Hán-Việt)
	Examples           []Pair            `gorm:"serializer:json" json:"examples,omitempty"`
	Collocations       CollocationGroups `gorm:"serializer:json" json:"collocations"`
	Senses             []Sense           `gorm:"serializer:json" json:"senses,omitempty"`
	Starred            bool              `gorm:"not null;default:false" json:"starred"`
	Schedule           *LeitnerProgress  `gorm:"serializer:json" json:"schedule,omitempty"` // nil = 未学習 (box 1 相当)
	Position           int               `gorm:"not null;index" json:"-"`                    // 挿入順の保持用
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func (VocabularyRecord) TableName() string {
	return "vocabulary_records"
}

// IsImportable はインポート可能な最低条件を満たすかを返します:
// 読みが空でなく、意味が少なくとも1つあること。
func (r VocabularyRecord) IsImportable() bool {
	if r.Reading == "" {
		return false
	}
	return r.PrimaryMeaning != "" || len(r.AdditionalMeanings) > 0
}

// RebuildFromSenses は Senses を正として平坦化フィールド
// (PrimaryMeaning / AdditionalMeanings / Examples / Collocations) を再計算します。
// Senses が空の場合は何もしません。
func (r *VocabularyRecord) RebuildFromSenses() {
	if len(r.Senses) == 0 {
		return
	}

	meanings := make([]string, 0, len(r.Senses))
	seen := make(map[string]bool, len(r.Senses))
	var examples []Pair
	var groups CollocationGroups

	for _, s := range r.Senses {
		if s.Meaning != "" && !seen[s.Meaning] {
			meanings = append(meanings, s.Meaning)
			seen[s.Meaning] = true
		}
		examples = appendUniquePairs(examples, s.Examples)
		groups.MergeFrom(s.Collocations)
	}

	if len(meanings) > 0 {
		r.PrimaryMeaning = meanings[0]
	}
	r.AdditionalMeanings = meanings
	r.Examples = examples
	r.Collocations = groups
}

// 単語作成リクエストDTO (手入力)
type PostVocabRequest struct {
	Kanji          string `json:"kanji" validate:"omitempty,min=1"`
	Reading        string `json:"reading" validate:"required"`
	Meaning        string `json:"meaning" validate:"required"`
	SinoVietnamese string `json:"sino_vietnamese" validate:"omitempty"`
	Examples       []Pair `json:"examples" validate:"omitempty,dive"`
}

// ToRecord はリクエスト内容から新しい単語レコードを組み立てます。
// 語義は index 1 の単一語義として保持されます。
func (req *PostVocabRequest) ToRecord() *VocabularyRecord {
	rec := &VocabularyRecord{
		Kanji:          req.Kanji,
		Reading:        req.Reading,
		SinoVietnamese: req.SinoVietnamese,
		Senses: []Sense{{
			Index:    1,
			Meaning:  req.Meaning,
			Examples: req.Examples,
		}},
	}
	rec.RebuildFromSenses()
	return rec
}

// 単語更新（全体）リクエストDTO。ID と学習進捗は変更されません。
type PutVocabRequest struct {
	Kanji          string `json:"kanji" validate:"omitempty,min=1"`
	Reading        string `json:"reading" validate:"required"`
	Meaning        string `json:"meaning" validate:"required"`
	SinoVietnamese string `json:"sino_vietnamese" validate:"omitempty"`
	Examples       []Pair `json:"examples" validate:"omitempty,dive"`
}

// ApplyTo は更新内容を既存レコードに反映します。語義は index 1 を
// 置き換え、それ以外の語義は保持します。
func (req *PutVocabRequest) ApplyTo(rec *VocabularyRecord) {
	rec.Kanji = req.Kanji
	rec.Reading = req.Reading
	rec.SinoVietnamese = req.SinoVietnamese

	replaced := false
	for i := range rec.Senses {
		if rec.Senses[i].Index == 1 {
			rec.Senses[i].Meaning = req.Meaning
			rec.Senses[i].Examples = req.Examples
			replaced = true
			break
		}
	}
	if !replaced {
		rec.Senses = append([]Sense{{Index: 1, Meaning: req.Meaning, Examples: req.Examples}}, rec.Senses...)
	}
	rec.RebuildFromSenses()
}
