package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes a size-limited request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

// validationMessage strips the sentinel prefix from a validation error,
// leaving the part that is safe to show to the client.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := entities.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && errors.Is(err, entities.ErrValidation) {
		return msg[i+len(prefix):]
	}
	return entities.ErrValidation.Error()
}
