package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/MatBureau/pitemp-monitor/internal/report"
)

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	temp := h.Prober.CPUTemperature(r.Context())
	snap := h.Prober.Snapshot(r.Context())

	var buf bytes.Buffer
	if err := report.RenderHTML(&buf, temp, snap, h.Now()); err != nil {
		h.Logger.ErrorContext(r.Context(), "render index", slog.String("error", err.Error()))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
