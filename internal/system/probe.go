package system

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MatBureau/pitemp-monitor/internal/logging"
)

// Policy decides how a snapshot degrades when one reading fails.
type Policy string

const (
	// PolicyAtomic blanks the whole snapshot when any reading fails.
	PolicyAtomic Policy = "atomic"
	// PolicyPerField keeps every reading that succeeded.
	PolicyPerField Policy = "per-field"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAtomic, PolicyPerField:
		return p, nil
	case "":
		return PolicyAtomic, nil
	}
	return "", fmt.Errorf("unknown snapshot policy %q", s)
}

// Observer is told about probe outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	ProbeFailed(probe, source string)
	TemperatureRead(celsius float64)
}

// Prober turns a Source into best-effort readings that never fail.
type Prober struct {
	Source   Source
	Policy   Policy
	Logger   *slog.Logger
	Observer Observer
}

// CPUTemperature returns the CPU temperature in °C, or nil when no source
// could provide it.
func (p *Prober) CPUTemperature(ctx context.Context) *float64 {
	v, err := p.Source.ReadTemperature(ctx)
	if err != nil {
		p.failed(ctx, "temperature", err)
		return nil
	}
	if p.Observer != nil {
		p.Observer.TemperatureRead(v)
	}
	return &v
}

// Snapshot reads CPU, memory and uptime. Readings are taken sequentially and
// fresh on every call.
func (p *Prober) Snapshot(ctx context.Context) Snapshot {
	var snap Snapshot
	failed := false

	if v, err := p.Source.ReadCPUPercent(ctx); err != nil {
		p.failed(ctx, "cpu", err)
		failed = true
	} else {
		snap.CPUPercent = &v
	}

	if m, err := p.Source.ReadMemory(ctx); err != nil {
		p.failed(ctx, "memory", err)
		failed = true
	} else {
		snap.MemoryPercent = ptr(m.Percent())
		snap.MemoryUsedMB = ptr(m.UsedMB)
		snap.MemoryTotalMB = ptr(m.TotalMB)
	}

	if u, err := p.Source.ReadUptime(ctx); err != nil {
		p.failed(ctx, "uptime", err)
		failed = true
	} else {
		snap.Uptime = &u
	}

	if failed && p.Policy != PolicyPerField {
		return Snapshot{}
	}
	return snap
}

func (p *Prober) failed(ctx context.Context, probe string, err error) {
	if p.Logger != nil {
		attrs := []any{
			slog.String("probe", probe),
			slog.String("source", p.Source.Name()),
			slog.String("error", err.Error()),
		}
		if id := logging.RequestID(ctx); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		p.Logger.DebugContext(ctx, "probe failed", attrs...)
	}
	if p.Observer != nil {
		p.Observer.ProbeFailed(probe, p.Source.Name())
	}
}
