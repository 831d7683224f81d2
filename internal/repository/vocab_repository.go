//go:generate mockery --name VocabRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"jpn_vocab_keep/internal/middleware"
	"jpn_vocab_keep/internal/model"

	"gorm.io/gorm"
)

// VocabRepository は語彙コレクションの永続化インターフェースです。
// コレクションは1ユーザー分のスナップショットとして扱い、
// マージ系の操作は ReplaceAll でコレクション全体を原子的に書き戻します。
type VocabRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]model.VocabularyRecord, error) // 挿入順
	FindByID(ctx context.Context, db *gorm.DB, id string) (*model.VocabularyRecord, error)
	Create(ctx context.Context, tx *gorm.DB, rec *model.VocabularyRecord) error
	Update(ctx context.Context, tx *gorm.DB, rec *model.VocabularyRecord) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, recs []model.VocabularyRecord) error // トランザクション内で呼ぶこと
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormVocabRepository struct{}

func NewGormVocabRepository() VocabRepository {
	return &gormVocabRepository{}
}

func (r *gormVocabRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)
	var recs []model.VocabularyRecord
	result := db.WithContext(ctx).Order("position ASC").Find(&recs)
	if result.Error != nil {
		logger.Error("Error finding vocabulary records in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabRepository.FindAll: %w", result.Error)
	}
	return recs, nil
}

func (r *gormVocabRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)
	var rec model.VocabularyRecord
	result := db.WithContext(ctx).Where("id = ?", id).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary record by ID in DB", "error", result.Error, "id", id)
		return nil, fmt.Errorf("gormVocabRepository.FindByID: %w", result.Error)
	}
	return &rec, nil
}

func (r *gormVocabRepository) Create(ctx context.Context, tx *gorm.DB, rec *model.VocabularyRecord) error {
	logger := middleware.GetLogger(ctx)

	// 挿入順を保つため position は末尾+1 を採番
	var maxPos *int
	if err := tx.WithContext(ctx).Model(&model.VocabularyRecord{}).
		Select("MAX(position)").Scan(&maxPos).Error; err != nil {
		logger.Error("Error fetching max position in DB", "error", err)
		return fmt.Errorf("gormVocabRepository.Create: %w", err)
	}
	if maxPos != nil {
		rec.Position = *maxPos + 1
	}

	result := tx.WithContext(ctx).Create(rec)
	if result.Error != nil {
		logger.Error("Error creating vocabulary record in DB", "error", result.Error, "kanji", rec.Kanji)
		return fmt.Errorf("gormVocabRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabRepository) Update(ctx context.Context, tx *gorm.DB, rec *model.VocabularyRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(rec)
	if result.Error != nil {
		logger.Error("Error updating vocabulary record in DB", "error", result.Error, "id", rec.ID)
		return fmt.Errorf("gormVocabRepository.Update: %w", result.Error)
	}
	return nil
}

// ReplaceAll はコレクション全体を渡されたレコード列で置き換えます。
// position は列の順序で振り直します。呼び出し元がトランザクションを張り、
// 読み取り→マージ→書き戻しを1セッションとして原子的に確定させる想定です。
func (r *gormVocabRepository) ReplaceAll(ctx context.Context, tx *gorm.DB, recs []model.VocabularyRecord) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("1 = 1").Delete(&model.VocabularyRecord{}).Error; err != nil {
		logger.Error("Error clearing vocabulary records in DB", "error", err)
		return fmt.Errorf("gormVocabRepository.ReplaceAll: %w", err)
	}
	if len(recs) == 0 {
		return nil
	}

	for i := range recs {
		recs[i].Position = i
	}
	if err := tx.WithContext(ctx).CreateInBatches(recs, 200).Error; err != nil {
		logger.Error("Error inserting vocabulary records in DB", "error", err, "count", len(recs))
		return fmt.Errorf("gormVocabRepository.ReplaceAll: %w", err)
	}
	return nil
}

func (r *gormVocabRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyRecord{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabRepository.Count: %w", result.Error)
	}
	return count, nil
}
