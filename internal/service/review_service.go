// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"time"

	"jpn_vocab_keep/internal/config"
	"jpn_vocab_keep/internal/leitner"
	"jpn_vocab_keep/internal/middleware"
	"jpn_vocab_keep/internal/model"
	"jpn_vocab_keep/internal/repository"
	"jpn_vocab_keep/internal/vocab"

	"gorm.io/gorm"
)

type ReviewService interface {
	GetReviewWords(ctx context.Context) ([]*model.ReviewWordResponse, error)
	GetReviewWordsCount(ctx context.Context) (int64, error)
	SubmitReview(ctx context.Context, id string, isCorrect bool) (*model.VocabularyRecord, error)
	GetStats(ctx context.Context) (*model.LeitnerStats, error)
}

type reviewService struct {
	db        *gorm.DB
	vocabRepo repository.VocabRepository
	cfg       *config.Config
}

func NewReviewService(db *gorm.DB, vocabRepo repository.VocabRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:        db,
		vocabRepo: vocabRepo,
		cfg:       cfg,
	}
}

func (s *reviewService) GetReviewWords(ctx context.Context) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx)

	records, err := s.vocabRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load records for review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải danh sách ôn tập.", "", err)
	}

	due := vocab.DueToday(records, time.Now())
	if limit := s.cfg.App.ReviewLimit; limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	responses := make([]*model.ReviewWordResponse, 0, len(due))
	for i := range due {
		responses = append(responses, reviewWordResponse(&due[i]))
	}

	logger.Info("Successfully retrieved review words", "count", len(responses))
	return responses, nil
}

func (s *reviewService) GetReviewWordsCount(ctx context.Context) (int64, error) {
	logger := middleware.GetLogger(ctx)

	records, err := s.vocabRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load records for review count", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể đếm số từ cần ôn tập.", "", err)
	}

	count := int64(len(vocab.DueToday(records, time.Now())))
	return count, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, id string, isCorrect bool) (*model.VocabularyRecord, error) {
	logger := middleware.GetLogger(ctx).With("id", id, "is_correct", isCorrect)

	var updated *model.VocabularyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.vocabRepo.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Không tìm thấy từ vựng.", "", model.ErrNotFound)
			}
			logger.Error("Error finding record in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải từ vựng.", "", err)
		}

		next := leitner.Apply(*rec, isCorrect, time.Now())

		if err := s.vocabRepo.Update(ctx, tx, &next); err != nil {
			logger.Error("Error updating review progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể lưu kết quả ôn tập.", "", err)
		}
		updated = &next
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Review submitted", "box", updated.Schedule.Box)
	return updated, nil
}

func (s *reviewService) GetStats(ctx context.Context) (*model.LeitnerStats, error) {
	logger := middleware.GetLogger(ctx)

	records, err := s.vocabRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load records for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải thống kê.", "", err)
	}

	stats := vocab.Stats(records, time.Now())
	return &stats, nil
}

func reviewWordResponse(rec *model.VocabularyRecord) *model.ReviewWordResponse {
	box := model.MinBox
	if rec.Schedule != nil {
		box = rec.Schedule.Box
	}
	return &model.ReviewWordResponse{
		ID:             rec.ID,
		Kanji:          rec.Kanji,
		Reading:        rec.Reading,
		PrimaryMeaning: rec.PrimaryMeaning,
		SinoVietnamese: rec.SinoVietnamese,
		Examples:       rec.Examples,
		Box:            box,
	}
}
