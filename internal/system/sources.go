package system

import (
	"fmt"
	"time"
)

// NewSource builds the source named by kind: "shell", "gopsutil" or "auto"
// (shell first, gopsutil when a shell reading fails).
func NewSource(kind, thermalZonePath string, probeTimeout time.Duration) (Source, error) {
	shell := NewShellSource(thermalZonePath, ExecRunner{Timeout: probeTimeout})
	ps := &GopsutilSource{Timeout: probeTimeout}

	switch kind {
	case "shell", "":
		return shell, nil
	case "gopsutil":
		return ps, nil
	case "auto":
		return &FallbackSource{Primary: shell, Secondary: ps}, nil
	}
	return nil, fmt.Errorf("unknown metrics source %q", kind)
}
