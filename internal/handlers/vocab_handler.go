// internal/handlers/vocab_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"jpn_vocab_keep/internal/model"
	"jpn_vocab_keep/internal/service"
	"jpn_vocab_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type VocabHandler struct {
	service service.VocabService
	logger  *slog.Logger
}

func NewVocabHandler(s service.VocabService, logger *slog.Logger) *VocabHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabHandler{
		service: s,
		logger:  logger,
	}
}

// validateStruct はリクエストDTOを検証し、失敗時は翻訳済みメッセージの
// AppError をクライアントに返します。
func validateStruct(w http.ResponseWriter, logger *slog.Logger, req any) bool {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
	} else {
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
	return false
}

// PostVocab は新しい単語リソースを作成するためのハンドラ
func (h *VocabHandler) PostVocab(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocab"))

	var req model.PostVocabRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateStruct(w, logger, req) {
		return
	}

	// 漢字・読みの両方が空のレコードは登録できない
	if req.Kanji == "" && req.Reading == "" {
		appErr := model.NewAppError("VALIDATION_ERROR", "Cần có chữ Hán hoặc cách đọc.", "kanji", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	rec, err := h.service.CreateVocab(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating vocab in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab created successfully", slog.String("id", rec.ID))
	webutil.RespondWithJSON(w, http.StatusCreated, rec, logger)
}

// GetVocabList は単語リソースの一覧を取得するためのハンドラ。
// ?q= で正規化検索、?starred=true でスター付きのみに絞り込めます。
func (h *VocabHandler) GetVocabList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabList"))

	query := r.URL.Query().Get("q")
	starredOnly := r.URL.Query().Get("starred") == "true"

	records, err := h.service.ListVocab(r.Context(), query, starredOnly)
	if err != nil {
		logger.Error("Error listing vocab in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.VocabularyRecord{}
	}
	logger.Info("Vocab listed successfully", slog.Int("count", len(records)))
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}

// GetVocab は特定の単語リソースを取得するためのハンドラ
func (h *VocabHandler) GetVocab(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocab"))

	id := chi.URLParam(r, "vocab_id")
	logger = logger.With(slog.String("id", id))

	rec, err := h.service.GetVocab(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Vocab not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting vocab from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// PutVocab は特定の単語リソースを完全に置き換えるためのハンドラ
func (h *VocabHandler) PutVocab(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutVocab"))

	id := chi.URLParam(r, "vocab_id")
	logger = logger.With(slog.String("id", id))

	var req model.PutVocabRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateStruct(w, logger, req) {
		return
	}

	rec, err := h.service.UpdateVocab(r.Context(), id, &req)
	if err != nil {
		logger.Error("Error updating vocab in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocab updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// PostToggleStar はスター状態を反転するためのハンドラ
func (h *VocabHandler) PostToggleStar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostToggleStar"))

	id := chi.URLParam(r, "vocab_id")
	logger = logger.With(slog.String("id", id))

	rec, err := h.service.ToggleStar(r.Context(), id)
	if err != nil {
		logger.Error("Error toggling star in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Star toggled successfully", slog.Bool("starred", rec.Starred))
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// GetExport は全単語データをJSONで出力するためのハンドラ (バックアップ用)
func (h *VocabHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExport"))

	records, err := h.service.ExportAll(r.Context())
	if err != nil {
		logger.Error("Error exporting vocab in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []model.VocabularyRecord{}
	}
	w.Header().Set("Content-Disposition", `attachment; filename="vocab_export.json"`)
	logger.Info("Vocab exported successfully", slog.Int("count", len(records)))
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}
