package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jpn_vocab_keep/internal/handlers"
	"jpn_vocab_keep/internal/model"
	svc_mocks "jpn_vocab_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: テスト用ルーター ---
func setupVocabRouter(mockService *svc_mocks.VocabService) *chi.Mux {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制
	h := handlers.NewVocabHandler(mockService, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1/vocab", func(r chi.Router) {
		r.Post("/", h.PostVocab)
		r.Get("/", h.GetVocabList)
		r.Get("/export", h.GetExport)
		r.Get("/{vocab_id}", h.GetVocab)
		r.Put("/{vocab_id}", h.PutVocab)
		r.Post("/{vocab_id}/star", h.PostToggleStar)
	})
	return r
}

func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func handlerTestRecord(id string) *model.VocabularyRecord {
	rec := &model.VocabularyRecord{
		ID:      id,
		Kanji:   "年",
		Reading: "とし",
		Senses:  []model.Sense{{Index: 1, Meaning: "năm"}},
	}
	rec.RebuildFromSenses()
	return rec
}

func TestVocabHandler_PostVocab(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(mockService *svc_mocks.VocabService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 作成成功で201",
			body: model.PostVocabRequest{Kanji: "年", Reading: "とし", Meaning: "năm"},
			setupMock: func(mockService *svc_mocks.VocabService) {
				mockService.On("CreateVocab", mock.Anything, mock.AnythingOfType("*model.PostVocabRequest")).
					Return(handlerTestRecord("id-1"), nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"kanji":"年"`,
		},
		{
			name:           "異常系: 必須フィールド欠落で400",
			body:           model.PostVocabRequest{Kanji: "年"},
			setupMock:      func(mockService *svc_mocks.VocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: 不正なJSONで400",
			body:           `{not json`,
			setupMock:      func(mockService *svc_mocks.VocabService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"INVALID_REQUEST"`,
		},
		{
			name: "異常系: 重複で409",
			body: model.PostVocabRequest{Kanji: "年", Reading: "とし", Meaning: "năm"},
			setupMock: func(mockService *svc_mocks.VocabService) {
				appErr := model.NewAppError("CONFLICT", "Từ vựng này đã tồn tại.", "kanji", model.ErrConflict)
				mockService.On("CreateVocab", mock.Anything, mock.AnythingOfType("*model.PostVocabRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"code":"CONFLICT"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.VocabService)
			tt.setupMock(mockService)
			router := setupVocabRouter(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/vocab/", tt.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestVocabHandler_GetVocabList(t *testing.T) {
	t.Run("正常系: クエリパラメータがサービスに渡る", func(t *testing.T) {
		mockService := new(svc_mocks.VocabService)
		mockService.On("ListVocab", mock.Anything, "nam", true).
			Return([]model.VocabularyRecord{*handlerTestRecord("id-1")}, nil).Once()
		router := setupVocabRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/vocab/?q=nam&starred=true", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"id-1"`)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: サービスがnilでも空配列を返す", func(t *testing.T) {
		mockService := new(svc_mocks.VocabService)
		mockService.On("ListVocab", mock.Anything, "", false).
			Return(nil, nil).Once()
		router := setupVocabRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/vocab/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
		mockService.AssertExpectations(t)
	})
}

func TestVocabHandler_GetVocab(t *testing.T) {
	t.Run("異常系: 存在しないIDは404", func(t *testing.T) {
		mockService := new(svc_mocks.VocabService)
		appErr := model.NewAppError("NOT_FOUND", "Không tìm thấy từ vựng.", "", model.ErrNotFound)
		mockService.On("GetVocab", mock.Anything, "missing").
			Return(nil, appErr).Once()
		router := setupVocabRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/vocab/missing", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"NOT_FOUND"`)
		mockService.AssertExpectations(t)
	})
}

func TestVocabHandler_PostToggleStar(t *testing.T) {
	t.Run("正常系: スター反転で200", func(t *testing.T) {
		rec := handlerTestRecord("id-1")
		rec.Starred = true

		mockService := new(svc_mocks.VocabService)
		mockService.On("ToggleStar", mock.Anything, "id-1").
			Return(rec, nil).Once()
		router := setupVocabRouter(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/vocab/id-1/star", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"starred":true`)
		mockService.AssertExpectations(t)
	})
}

func TestVocabHandler_GetExport(t *testing.T) {
	t.Run("正常系: 添付ファイルヘッダ付きで全件返す", func(t *testing.T) {
		mockService := new(svc_mocks.VocabService)
		mockService.On("ExportAll", mock.Anything).
			Return([]model.VocabularyRecord{*handlerTestRecord("id-1")}, nil).Once()
		router := setupVocabRouter(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/vocab/export", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "vocab_export.json")
		assert.Contains(t, rr.Body.String(), `"id":"id-1"`)
		mockService.AssertExpectations(t)
	})
}
