package system

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrUnavailable means the sensor, file or tool could not be reached.
	ErrUnavailable = errors.New("metric source unavailable")
	// ErrUnexpectedOutput means the source answered but not in the expected grammar.
	ErrUnexpectedOutput = errors.New("unexpected metric output")
)

// Source reads one host's raw metrics. Each method is independent and may
// fail on its own.
type Source interface {
	Name() string
	ReadTemperature(ctx context.Context) (float64, error)
	ReadCPUPercent(ctx context.Context) (float64, error)
	ReadMemory(ctx context.Context) (Memory, error)
	ReadUptime(ctx context.Context) (string, error)
}

type Memory struct {
	UsedMB  int64
	TotalMB int64
}

// Percent returns used/total*100 rounded to one decimal place.
func (m Memory) Percent() float64 {
	if m.TotalMB <= 0 {
		return 0
	}
	return round1(float64(m.UsedMB) / float64(m.TotalMB) * 100)
}

// Snapshot is a point-in-time bundle of utilization readings. A nil field
// could not be determined.
type Snapshot struct {
	CPUPercent    *float64
	MemoryPercent *float64
	MemoryUsedMB  *int64
	MemoryTotalMB *int64
	Uptime        *string
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ptr[T any](v T) *T { return &v }
