package httpapi

import (
	"encoding/json"
	"net/http"
)

// apiError is the error envelope for all non-2xx responses. Fields carries
// per-field validation messages on 400 responses.
type apiError struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, apiError{Error: msg, Code: code}, code)
}

func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, apiError{
		Error:  "validation failed",
		Code:   http.StatusBadRequest,
		Fields: fields,
	}, http.StatusBadRequest)
}
