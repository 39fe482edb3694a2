package handlers

import "net/http"

// Health reports that the process is serving; it does not touch the probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
