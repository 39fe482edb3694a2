package system

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseMillidegrees converts the content of a thermal zone file, e.g. "48312\n",
// to degrees Celsius rounded to one decimal place.
func ParseMillidegrees(raw string) (float64, error) {
	v, err := parseFinite(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: thermal zone value %q", ErrUnexpectedOutput, raw)
	}
	return round1(v / 1000), nil
}

// parseFinite is strconv.ParseFloat that also rejects NaN and ±Inf.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// ParseVcgencmd extracts the value from `vcgencmd measure_temp` output,
// e.g. "temp=42.8'C".
func ParseVcgencmd(out string) (float64, error) {
	out = strings.TrimSpace(out)
	_, rest, ok := strings.Cut(out, "=")
	if !ok {
		return 0, fmt.Errorf("%w: vcgencmd %q", ErrUnexpectedOutput, out)
	}
	num, _, _ := strings.Cut(rest, "'")
	v, err := parseFinite(strings.TrimSpace(num))
	if err != nil {
		return 0, fmt.Errorf("%w: vcgencmd %q", ErrUnexpectedOutput, out)
	}
	return round1(v), nil
}

// ParseTopCPU reads the first value of the Cpu(s) summary line of `top -bn1`.
// Both the old "Cpu(s):  3.1%us," and the procps-ng "%Cpu(s):  3.1 us,"
// layouts are accepted.
func ParseTopCPU(out string) (float64, error) {
	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Cpu(s)") {
			line = l
			break
		}
	}
	if line == "" {
		return 0, fmt.Errorf("%w: no Cpu(s) line in top output", ErrUnexpectedOutput)
	}

	field, _, _ := strings.Cut(line, ",")
	_, value, ok := strings.Cut(field, ":")
	if !ok {
		return 0, fmt.Errorf("%w: top line %q", ErrUnexpectedOutput, line)
	}
	value, _, _ = strings.Cut(strings.TrimSpace(value), "%")
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: top line %q", ErrUnexpectedOutput, line)
	}
	v, err := parseFinite(tokens[0])
	if err != nil {
		return 0, fmt.Errorf("%w: top line %q", ErrUnexpectedOutput, line)
	}
	return v, nil
}

// ParseFreeMemory reads total and used megabytes from the second line of
// `free -m` output.
func ParseFreeMemory(out string) (Memory, error) {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return Memory{}, fmt.Errorf("%w: free output has %d lines", ErrUnexpectedOutput, len(lines))
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 3 {
		return Memory{}, fmt.Errorf("%w: free line %q", ErrUnexpectedOutput, lines[1])
	}
	total, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Memory{}, fmt.Errorf("%w: free total %q", ErrUnexpectedOutput, fields[1])
	}
	used, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Memory{}, fmt.Errorf("%w: free used %q", ErrUnexpectedOutput, fields[2])
	}
	if total <= 0 {
		return Memory{}, fmt.Errorf("%w: free total is %d", ErrUnexpectedOutput, total)
	}
	return Memory{UsedMB: used, TotalMB: total}, nil
}

// FormatUptime renders d the way `uptime -p` does, e.g.
// "up 1 week, 2 days, 3 hours, 4 minutes".
func FormatUptime(d time.Duration) string {
	mins := int64(d / time.Minute)
	weeks := mins / (7 * 24 * 60)
	mins -= weeks * 7 * 24 * 60
	days := mins / (24 * 60)
	mins -= days * 24 * 60
	hours := mins / 60
	mins -= hours * 60

	var parts []string
	add := func(n int64, unit string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}
	add(weeks, "week")
	add(days, "day")
	add(hours, "hour")
	add(mins, "minute")
	if len(parts) == 0 {
		return "up 0 minutes"
	}
	return "up " + strings.Join(parts, ", ")
}
