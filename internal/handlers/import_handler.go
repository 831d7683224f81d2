// internal/handlers/import_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"jpn_vocab_keep/internal/service"
	"jpn_vocab_keep/internal/webutil"
)

type ImportHandler struct {
	service service.ImportService
	logger  *slog.Logger
}

func NewImportHandler(s service.ImportService, logger *slog.Logger) *ImportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportHandler{
		service: s,
		logger:  logger,
	}
}

// PostImport はCSVをインポートするハンドラ。ボディはCSV本体で、
// クエリパラメータでマージ動作を指定します。
//   - preserve_progress=true : 自然キー一致時に学習進捗を引き継ぐ
//   - merge=id               : 自然キーではなく単語IDでマージする
func (h *ImportHandler) PostImport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostImport"))

	opts := service.ImportOptions{
		PreserveProgress: r.URL.Query().Get("preserve_progress") == "true",
		MergeByID:        r.URL.Query().Get("merge") == "id",
	}

	summary, err := h.service.ImportCSV(r.Context(), r.Body, opts)
	if err != nil {
		logger.Warn("CSV import failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("CSV import succeeded",
		slog.String("schema", summary.Schema),
		slog.Int("imported", summary.Imported),
	)
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
