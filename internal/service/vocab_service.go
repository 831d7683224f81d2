// internal/service/vocab_service.go
package service

import (
	"context"
	"errors"

	"jpn_vocab_keep/internal/middleware"
	"jpn_vocab_keep/internal/model"
	"jpn_vocab_keep/internal/repository"
	"jpn_vocab_keep/internal/vocab"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabService interface {
	ListVocab(ctx context.Context, query string, starredOnly bool) ([]model.VocabularyRecord, error)
	GetVocab(ctx context.Context, id string) (*model.VocabularyRecord, error)
	CreateVocab(ctx context.Context, req *model.PostVocabRequest) (*model.VocabularyRecord, error)
	UpdateVocab(ctx context.Context, id string, req *model.PutVocabRequest) (*model.VocabularyRecord, error)
	ToggleStar(ctx context.Context, id string) (*model.VocabularyRecord, error)
	ExportAll(ctx context.Context) ([]model.VocabularyRecord, error)
}

type vocabService struct {
	db        *gorm.DB // トランザクション用にDB接続を持つ
	vocabRepo repository.VocabRepository
}

func NewVocabService(db *gorm.DB, vocabRepo repository.VocabRepository) VocabService {
	return &vocabService{
		db:        db,
		vocabRepo: vocabRepo,
	}
}

func (s *vocabService) ListVocab(ctx context.Context, query string, starredOnly bool) ([]model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)

	records, err := s.vocabRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list vocabulary records", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải danh sách từ vựng.", "", err)
	}

	if starredOnly {
		records = vocab.Starred(records)
	}
	if query != "" {
		records = vocab.Search(records, query)
	}

	logger.Info("Successfully listed vocabulary records", "count", len(records))
	return records, nil
}

func (s *vocabService) GetVocab(ctx context.Context, id string) (*model.VocabularyRecord, error) {
	rec, err := s.vocabRepo.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Không tìm thấy từ vựng.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải từ vựng.", "", err)
	}
	return rec, nil
}

func (s *vocabService) CreateVocab(ctx context.Context, req *model.PostVocabRequest) (*model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)

	rec := req.ToRecord()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	var created *model.VocabularyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 自然キー (漢字+読み) の重複チェック
		existing, err := s.vocabRepo.FindAll(ctx, tx)
		if err != nil {
			logger.Error("Error loading records for duplicate check", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể kiểm tra trùng lặp.", "", err)
		}
		key := vocab.NaturalKey(*rec)
		for i := range existing {
			if vocab.NaturalKey(existing[i]) == key {
				return model.NewAppError("CONFLICT", "Từ vựng này đã tồn tại.", "kanji", model.ErrConflict)
			}
		}

		if err := s.vocabRepo.Create(ctx, tx, rec); err != nil {
			logger.Error("Error creating vocabulary record", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tạo từ vựng.", "", err)
		}
		created = rec
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary record created", "id", created.ID)
	return created, nil
}

func (s *vocabService) UpdateVocab(ctx context.Context, id string, req *model.PutVocabRequest) (*model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.VocabularyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.vocabRepo.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Không tìm thấy từ vựng.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải từ vựng.", "", err)
		}

		req.ApplyTo(rec)

		if err := s.vocabRepo.Update(ctx, tx, rec); err != nil {
			logger.Error("Error updating vocabulary record", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể cập nhật từ vựng.", "", err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary record updated", "id", updated.ID)
	return updated, nil
}

func (s *vocabService) ToggleStar(ctx context.Context, id string) (*model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.VocabularyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.vocabRepo.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Không tìm thấy từ vựng.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải từ vựng.", "", err)
		}

		rec.Starred = !rec.Starred

		if err := s.vocabRepo.Update(ctx, tx, rec); err != nil {
			logger.Error("Error toggling star", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể cập nhật đánh dấu sao.", "", err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Star toggled", "id", updated.ID, "starred", updated.Starred)
	return updated, nil
}

func (s *vocabService) ExportAll(ctx context.Context) ([]model.VocabularyRecord, error) {
	records, err := s.vocabRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể xuất dữ liệu.", "", err)
	}
	return records, nil
}
