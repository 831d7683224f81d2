// internal/model/legacy.go
package model

import "time"

// LegacyWord は旧スキーマ (v1: 単一意味 + 例文フィールド) の行です。
// 起動時の一回限りの移行でのみ読み取り、以後は書き込みません。
type LegacyWord struct {
	ID              string `gorm:"primaryKey"`
	Kanji           string
	Hiragana        string
	Meaning         string
	SinoVietnamese  string
	ExampleSentence string
	ExampleMeaning  string
	Starred         bool
	Leitner         string `gorm:"column:leitner"` // 旧形式のJSON文字列 (camelCaseキー)
	CreatedAt       time.Time
}

func (LegacyWord) TableName() string {
	return "words"
}
