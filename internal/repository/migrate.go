// internal/repository/migrate.go
package repository

import (
	"encoding/json"
	"log/slog"
	"time"

	"jpn_vocab_keep/internal/model"

	"gorm.io/gorm"
)

// Migrate はスキーマを適用し、旧v1データがあれば一回限りの移行を行います。
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(&model.VocabularyRecord{}); err != nil {
		return err
	}
	return migrateLegacyWords(db, logger)
}

// 旧v1形式 (単一意味 + leitner JSON文字列) の進捗フィールド。
// キーは当時のまま camelCase。
type legacyLeitner struct {
	Box           int        `json:"box"`
	NextReview    time.Time  `json:"nextReview"`
	CorrectStreak int        `json:"correctStreak"`
	TotalReviews  int        `json:"totalReviews"`
	LastReviewed  *time.Time `json:"lastReviewed"`
}

// migrateLegacyWords は現テーブルが空で旧 words テーブルに行がある場合のみ、
// 各行を「index 1 の Sense を1つ持つレコード」に変換して取り込みます。
// 学習進捗はそのまま引き継ぎ、解釈できない leitner JSON は未学習扱いにします。
func migrateLegacyWords(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&model.VocabularyRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if !db.Migrator().HasTable(&model.LegacyWord{}) {
		return nil
	}

	var legacy []model.LegacyWord
	if err := db.Order("created_at ASC").Find(&legacy).Error; err != nil {
		return err
	}
	if len(legacy) == 0 {
		return nil
	}

	logger.Info("Migrating legacy vocabulary", slog.Int("count", len(legacy)))

	recs := make([]model.VocabularyRecord, 0, len(legacy))
	for _, w := range legacy {
		rec := model.VocabularyRecord{
			ID:             w.ID,
			Kanji:          w.Kanji,
			Reading:        w.Hiragana,
			SinoVietnamese: w.SinoVietnamese,
			Starred:        w.Starred,
		}
		if rec.Kanji == "" {
			rec.Kanji = rec.Reading
		}

		sense := model.Sense{Index: 1, Meaning: w.Meaning}
		if w.ExampleSentence != "" {
			sense.Examples = []model.Pair{{JP: w.ExampleSentence, VI: w.ExampleMeaning}}
		}
		rec.Senses = []model.Sense{sense}
		rec.RebuildFromSenses()

		if w.Leitner != "" {
			var ln legacyLeitner
			if err := json.Unmarshal([]byte(w.Leitner), &ln); err == nil && ln.Box >= model.MinBox {
				rec.Schedule = &model.LeitnerProgress{
					Box:            ln.Box,
					NextReviewDate: ln.NextReview,
					CorrectStreak:  ln.CorrectStreak,
					TotalReviews:   ln.TotalReviews,
					LastReviewedAt: ln.LastReviewed,
				}
			} else if err != nil {
				logger.Warn("Skipping unreadable legacy leitner state", slog.String("id", w.ID), slog.Any("error", err))
			}
		}

		recs = append(recs, rec)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			recs[i].Position = i
		}
		return tx.CreateInBatches(recs, 200).Error
	})
}
