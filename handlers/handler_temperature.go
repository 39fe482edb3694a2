package handlers

import (
	"net/http"

	"github.com/MatBureau/pitemp-monitor/internal/report"
)

func (h *Handlers) Temperature(w http.ResponseWriter, r *http.Request) {
	temp := h.Prober.CPUTemperature(r.Context())
	writeJSON(w, report.NewTemperature(temp, h.Now()))
}
