package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"

// ShellSource reads metrics the way a Raspberry Pi shell user would: the
// thermal zone pseudo-file, vcgencmd, top, free and uptime.
type ShellSource struct {
	ThermalZonePath string
	Runner          Runner
	ReadFile        func(name string) ([]byte, error)
}

func NewShellSource(thermalZonePath string, runner Runner) *ShellSource {
	if thermalZonePath == "" {
		thermalZonePath = DefaultThermalZonePath
	}
	return &ShellSource{
		ThermalZonePath: thermalZonePath,
		Runner:          runner,
		ReadFile:        os.ReadFile,
	}
}

func (s *ShellSource) Name() string { return "shell" }

// ReadTemperature tries the thermal zone file first and vcgencmd second.
func (s *ShellSource) ReadTemperature(ctx context.Context) (float64, error) {
	v, zoneErr := s.readThermalZone()
	if zoneErr == nil {
		return v, nil
	}
	out, err := s.Runner.Run(ctx, "vcgencmd", "measure_temp")
	if err != nil {
		return 0, errors.Join(zoneErr, err)
	}
	v, err = ParseVcgencmd(out)
	if err != nil {
		return 0, errors.Join(zoneErr, err)
	}
	return v, nil
}

func (s *ShellSource) readThermalZone() (float64, error) {
	b, err := s.ReadFile(s.ThermalZonePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ParseMillidegrees(string(b))
}

func (s *ShellSource) ReadCPUPercent(ctx context.Context) (float64, error) {
	out, err := s.Runner.Run(ctx, "top", "-bn1")
	if err != nil {
		return 0, err
	}
	return ParseTopCPU(out)
}

func (s *ShellSource) ReadMemory(ctx context.Context) (Memory, error) {
	out, err := s.Runner.Run(ctx, "free", "-m")
	if err != nil {
		return Memory{}, err
	}
	return ParseFreeMemory(out)
}

func (s *ShellSource) ReadUptime(ctx context.Context) (string, error) {
	out, err := s.Runner.Run(ctx, "uptime", "-p")
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty uptime output", ErrUnexpectedOutput)
	}
	return out, nil
}
