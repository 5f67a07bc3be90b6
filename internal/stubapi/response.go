package stubapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// RespondWithJSON sends a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"success":false,"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// RespondWithData wraps data in a successful envelope.
func RespondWithData[T any](w http.ResponseWriter, code int, data T) {
	RespondWithJSON(w, code, envelope[T]{Success: true, Data: &data})
}

// RespondWithError sends a failed envelope carrying message.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, envelope[struct{}]{Success: false, Error: message})
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
