package system

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// preferred sensor keys, most specific first
var cpuSensorKeys = []string{
	"cpu_thermal",
	"coretemp_package_id_0",
	"k10temp_tctl",
	"soc_thermal",
	"acpitz",
}

// GopsutilSource reads metrics through gopsutil, so it works on hosts that
// lack the Raspberry Pi tooling.
type GopsutilSource struct {
	// CPUInterval is the sampling window for CPU usage. Zero compares against
	// the previous call, which does not block.
	CPUInterval time.Duration
	// Timeout bounds each reading.
	Timeout time.Duration
}

func (g *GopsutilSource) Name() string { return "gopsutil" }

func (g *GopsutilSource) ReadTemperature(ctx context.Context) (float64, error) {
	ctx, cancel := WithTimeout(ctx, g.Timeout)
	defer cancel()

	// gopsutil returns partial results alongside warnings; use what we got
	sensors, err := host.SensorsTemperaturesWithContext(ctx)
	if len(sensors) == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w: sensors: %v", ErrUnavailable, err)
		}
		return 0, fmt.Errorf("%w: no temperature sensors", ErrUnavailable)
	}
	if t, ok := pickCPUSensor(sensors); ok {
		return round1(t), nil
	}
	return 0, fmt.Errorf("%w: no usable temperature sensor", ErrUnavailable)
}

func pickCPUSensor(sensors []host.TemperatureStat) (float64, bool) {
	usable := func(t float64) bool { return t > 0 && !math.IsInf(t, 0) }
	for _, key := range cpuSensorKeys {
		for _, s := range sensors {
			if strings.HasPrefix(strings.ToLower(s.SensorKey), key) && usable(s.Temperature) {
				return s.Temperature, true
			}
		}
	}
	for _, s := range sensors {
		if usable(s.Temperature) {
			return s.Temperature, true
		}
	}
	return 0, false
}

func (g *GopsutilSource) ReadCPUPercent(ctx context.Context) (float64, error) {
	ctx, cancel := WithTimeout(ctx, g.Timeout)
	defer cancel()

	percent, err := cpu.PercentWithContext(ctx, g.CPUInterval, false)
	if err != nil {
		return 0, fmt.Errorf("%w: cpu percent: %v", ErrUnavailable, err)
	}
	if len(percent) == 0 {
		return 0, fmt.Errorf("%w: empty cpu percent", ErrUnexpectedOutput)
	}
	return round1(percent[0]), nil
}

func (g *GopsutilSource) ReadMemory(ctx context.Context) (Memory, error) {
	ctx, cancel := WithTimeout(ctx, g.Timeout)
	defer cancel()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("%w: virtual memory: %v", ErrUnavailable, err)
	}
	if vm.Total == 0 {
		return Memory{}, fmt.Errorf("%w: zero total memory", ErrUnexpectedOutput)
	}
	const mb = 1024 * 1024
	return Memory{UsedMB: int64(vm.Used / mb), TotalMB: int64(vm.Total / mb)}, nil
}

func (g *GopsutilSource) ReadUptime(ctx context.Context) (string, error) {
	ctx, cancel := WithTimeout(ctx, g.Timeout)
	defer cancel()

	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: uptime: %v", ErrUnavailable, err)
	}
	return FormatUptime(time.Duration(secs) * time.Second), nil
}
