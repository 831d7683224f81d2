// internal/handlers/review_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"jpn_vocab_keep/internal/model"
	"jpn_vocab_keep/internal/service"
	"jpn_vocab_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetReviewWords は本日復習すべき単語の一覧を返すハンドラ
func (h *ReviewHandler) GetReviewWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewWords"))

	words, err := h.service.GetReviewWords(r.Context())
	if err != nil {
		logger.Error("Error getting review words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.ReviewWordResponse{}
	}
	logger.Info("Review words retrieved successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetReviewWordsCount は本日復習すべき単語数を返すハンドラ
func (h *ReviewHandler) GetReviewWordsCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewWordsCount"))

	count, err := h.service.GetReviewWordsCount(r.Context())
	if err != nil {
		logger.Error("Error counting review words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]int64{"count": count}, logger)
}

// SubmitReviewResult は復習の正誤を受け取り、学習進捗を更新するハンドラ
func (h *ReviewHandler) SubmitReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitReviewResult"))

	id := chi.URLParam(r, "vocab_id")
	logger = logger.With(slog.String("id", id))

	var req model.SubmitReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateStruct(w, logger, req) {
		return
	}

	rec, err := h.service.SubmitReview(r.Context(), id, *req.IsCorrect)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Vocab not found for review", slog.Any("error", err))
		} else {
			logger.Error("Error submitting review in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review result submitted successfully", slog.Int("box", rec.Schedule.Box))
	webutil.RespondWithJSON(w, http.StatusOK, rec, logger)
}

// GetStats はLeitnerボックスの分布と学習状況の統計を返すハンドラ
func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error getting stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
