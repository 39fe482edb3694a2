// Package report turns probe results into the JSON documents and HTML page
// served by the dashboard. Everything here is a pure function of its inputs.
package report

import (
	"fmt"
	"time"

	"github.com/MatBureau/pitemp-monitor/internal/system"
)

const (
	NotAvailable = "N/A"
	Unit         = "Celsius"

	// ISO-8601 local time with microseconds and offset.
	TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"
	// layout shown on the HTML page
	DisplayLayout = "2006-01-02 15:04:05"
)

type Temperature struct {
	Temperature *float64 `json:"temperature"`
	Timestamp   string   `json:"timestamp"`
	Unit        string   `json:"unit"`
}

type SystemInfo struct {
	CPUUsage    string `json:"cpu_usage"`
	MemoryUsage string `json:"memory_usage"`
	MemoryUsed  string `json:"memory_used"`
	MemoryTotal string `json:"memory_total"`
	Uptime      string `json:"uptime"`
}

type System struct {
	Temperature *float64   `json:"temperature"`
	SystemInfo  SystemInfo `json:"system_info"`
	Timestamp   string     `json:"timestamp"`
}

func NewTemperature(temp *float64, now time.Time) Temperature {
	return Temperature{
		Temperature: temp,
		Timestamp:   Timestamp(now),
		Unit:        Unit,
	}
}

func NewSystem(temp *float64, snap system.Snapshot, now time.Time) System {
	return System{
		Temperature: temp,
		SystemInfo:  NewSystemInfo(snap),
		Timestamp:   Timestamp(now),
	}
}

// NewSystemInfo formats each snapshot field as a display string, using
// "N/A" for readings that could not be taken.
func NewSystemInfo(snap system.Snapshot) SystemInfo {
	return SystemInfo{
		CPUUsage:    format(snap.CPUPercent, "%.1f%%"),
		MemoryUsage: format(snap.MemoryPercent, "%.1f%%"),
		MemoryUsed:  format(snap.MemoryUsedMB, "%dMB"),
		MemoryTotal: format(snap.MemoryTotalMB, "%dMB"),
		Uptime:      format(snap.Uptime, "%s"),
	}
}

func Timestamp(now time.Time) string {
	return now.Local().Format(TimestampLayout)
}

func format[T any](v *T, layout string) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf(layout, *v)
}
