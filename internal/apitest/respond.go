package apitest

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the backend's conventional error response shape —
// the client extracts .message from exactly this structure.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		// Encoding an in-memory fixture can't realistically fail; ignore.
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, resource, id string) {
	writeError(w, http.StatusNotFound, "not_found", resource+" not found with id "+id)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "validation_error", message)
}

func decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}
