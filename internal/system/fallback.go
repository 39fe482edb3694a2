package system

import (
	"context"
	"errors"
)

// FallbackSource asks Primary first and Secondary when Primary fails,
// reading by reading.
type FallbackSource struct {
	Primary   Source
	Secondary Source
}

func (f *FallbackSource) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

func (f *FallbackSource) ReadTemperature(ctx context.Context) (float64, error) {
	return fallback(ctx, f, Source.ReadTemperature)
}

func (f *FallbackSource) ReadCPUPercent(ctx context.Context) (float64, error) {
	return fallback(ctx, f, Source.ReadCPUPercent)
}

func (f *FallbackSource) ReadMemory(ctx context.Context) (Memory, error) {
	return fallback(ctx, f, Source.ReadMemory)
}

func (f *FallbackSource) ReadUptime(ctx context.Context) (string, error) {
	return fallback(ctx, f, Source.ReadUptime)
}

func fallback[T any](ctx context.Context, f *FallbackSource, read func(Source, context.Context) (T, error)) (T, error) {
	v, err := read(f.Primary, ctx)
	if err == nil {
		return v, nil
	}
	v, err2 := read(f.Secondary, ctx)
	if err2 == nil {
		return v, nil
	}
	var zero T
	return zero, errors.Join(err, err2)
}
