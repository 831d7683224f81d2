// internal/service/import_service.go
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"jpn_vocab_keep/internal/importer"
	"jpn_vocab_keep/internal/leitner"
	"jpn_vocab_keep/internal/middleware"
	"jpn_vocab_keep/internal/model"
	"jpn_vocab_keep/internal/repository"
	"jpn_vocab_keep/internal/vocab"

	"gorm.io/gorm"
)

// ImportOptions はCSVインポートの動作を制御します。
type ImportOptions struct {
	// PreserveProgress が true の場合、自然キーで一致した既存単語の
	// 学習進捗とスター状態を引き継ぎます。
	PreserveProgress bool
	// MergeByID が true の場合、自然キーではなく単語IDで照合し、
	// 語義を index 単位でマージします。
	MergeByID bool
}

type ImportService interface {
	ImportCSV(ctx context.Context, r io.Reader, opts ImportOptions) (*model.ImportSummary, error)
}

type importService struct {
	db        *gorm.DB
	vocabRepo repository.VocabRepository
}

func NewImportService(db *gorm.DB, vocabRepo repository.VocabRepository) ImportService {
	return &importService{
		db:        db,
		vocabRepo: vocabRepo,
	}
}

func (s *importService) ImportCSV(ctx context.Context, r io.Reader, opts ImportOptions) (*model.ImportSummary, error) {
	logger := middleware.GetLogger(ctx)

	table, err := importer.DecodeRows(r)
	if err != nil {
		logger.Warn("Failed to decode CSV", "error", err)
		return nil, model.NewAppError("INVALID_CSV", "Không thể đọc tệp CSV.", "", model.ErrInvalidInput)
	}

	result, err := importer.Parse(table)
	if err != nil {
		var noRecords *importer.NoValidRecordsError
		if errors.As(err, &noRecords) {
			logger.Warn("CSV contained no valid records", "headers", noRecords.Headers)
			return nil, model.NewAppError("NO_VALID_RECORDS", noRecords.Error(), "", model.ErrInvalidInput)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể phân tích tệp CSV.", "", err)
	}

	// 行単位の警告 (インポート自体は継続する)
	var issues []model.RowIssue
	if result.Schema == importer.SchemaLongForm {
		issues = importer.ValidateLongForm(table.HeaderRows())
	}

	// 新規レコードはボックス1・本日復習で初期化する
	now := time.Now()
	incoming := make([]model.VocabularyRecord, len(result.Records))
	for i, rec := range result.Records {
		incoming[i] = leitner.Initialize(rec, now)
	}

	var merged []model.VocabularyRecord

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.vocabRepo.FindAll(ctx, tx)
		if err != nil {
			logger.Error("Error loading existing records for merge", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể tải dữ liệu hiện có.", "", err)
		}

		if opts.MergeByID {
			merged = vocab.MergeByID(existing, incoming)
		} else {
			merged = vocab.SmartMerge(existing, incoming, opts.PreserveProgress)
		}

		if err := s.vocabRepo.ReplaceAll(ctx, tx, merged); err != nil {
			logger.Error("Error replacing records after merge", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Không thể lưu dữ liệu đã nhập.", "", err)
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("CSV import completed",
		"schema", result.Schema,
		"imported", len(incoming),
		"total", len(merged),
		"issues", len(issues),
	)

	return &model.ImportSummary{
		Imported: len(incoming),
		Schema:   result.Schema,
		Issues:   issues,
	}, nil
}
