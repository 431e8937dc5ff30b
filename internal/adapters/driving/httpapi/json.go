package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// envelope is the uniform response shape of every endpoint. Success and
// failure both arrive as a 2xx/4xx/5xx body with these fields; handlers
// never leak a bare error or a panic across the API boundary.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response: %v", err)
	}
}

// writeData writes a success envelope. A nil payload is a valid result:
// not-found lookups report success with null data.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}
