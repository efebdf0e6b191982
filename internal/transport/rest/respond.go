package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFieldErrors reports each offending field as {"error":[{field,message}]}.
func writeFieldErrors(w http.ResponseWriter, errs []domain.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string][]domain.FieldError{"error": errs})
}

type successResponse struct {
	Success bool `json:"success"`
}

// decodeObject reads a JSON object body into a Patch. Anything after the
// object other than whitespace is rejected.
func decodeObject(r *http.Request) (domain.Patch, error) {
	var p domain.Patch
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON object")
	}
	if p == nil {
		p = domain.Patch{}
	}
	return p, nil
}
