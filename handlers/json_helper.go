package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON always answers 200: probes degrade to null / "N/A" instead of
// failing the request.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
