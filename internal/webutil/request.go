package webutil

import (
	"encoding/json"
	"net/http"

	"jpn_vocab_keep/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST", "Nội dung yêu cầu trống.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST", "Nội dung yêu cầu không hợp lệ.", "", model.ErrInvalidInput)
	}
	return nil
}
