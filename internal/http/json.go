package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// DecodeJSON decodes the request body into dst. Malformed bodies surface as
// validation errors so the normaliser maps them to 422.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body")
	}
	return nil
}

// WriteData writes a success envelope {"data": v} with the given status.
func WriteData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, map[string]any{"data": v})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Client disconnects surface here; nothing left to do.
		return
	}
}
