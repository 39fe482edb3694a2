package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/MatBureau/pitemp-monitor/internal/system"
)

// Prober is the part of system.Prober the handlers need.
type Prober interface {
	CPUTemperature(ctx context.Context) *float64
	Snapshot(ctx context.Context) system.Snapshot
}

// Handlers serves the dashboard routes. Every request reads the probes
// afresh; nothing is shared between requests.
type Handlers struct {
	Prober Prober
	Logger *slog.Logger
	Now    func() time.Time
}

func New(p Prober, logger *slog.Logger) *Handlers {
	return &Handlers{Prober: p, Logger: logger, Now: time.Now}
}
