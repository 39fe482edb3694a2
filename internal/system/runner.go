package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes an external command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands on the host, each bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		// killed by the deadline reads better than "signal: killed"
		if ctx.Err() != nil && !errors.Is(err, exec.ErrNotFound) {
			err = ctx.Err()
		}
		return "", fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return stdout.String(), nil
}

// WithTimeout bounds ctx by d. A non-positive d leaves the deadline unchanged.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
