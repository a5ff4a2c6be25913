package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lzjever/chimpgate/internal/core"
)

// ErrorResponse is the gateway error body. Upstream fields carry the remote
// error when a MailChimp or Mandrill call failed.
type ErrorResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	UpstreamCode any    `json:"upstream_code,omitempty"`
	UpstreamName string `json:"upstream_name,omitempty"`
}

// WriteError writes a gateway error response.
func WriteError(w http.ResponseWriter, err *core.AppError) {
	WriteJSON(w, err.Code.HTTPStatus(), ErrorResponse{
		Code:    string(err.Code),
		Message: err.Message,
	})
}

// WriteCallError classifies err and keeps the remote error details.
func WriteCallError(w http.ResponseWriter, err error) {
	app := core.Classify(err)
	resp := ErrorResponse{Code: string(app.Code), Message: app.Message}
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		resp.Message = apiErr.Message
		resp.UpstreamCode = apiErr.Code
		resp.UpstreamName = apiErr.Name
	}
	WriteJSON(w, app.Code.HTTPStatus(), resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
