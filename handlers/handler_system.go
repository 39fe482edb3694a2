package handlers

import (
	"net/http"

	"github.com/MatBureau/pitemp-monitor/internal/report"
)

func (h *Handlers) System(w http.ResponseWriter, r *http.Request) {
	temp := h.Prober.CPUTemperature(r.Context())
	snap := h.Prober.Snapshot(r.Context())
	writeJSON(w, report.NewSystem(temp, snap, h.Now()))
}
