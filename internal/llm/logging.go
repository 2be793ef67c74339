package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

type contextKey string

const taskKey contextKey = "llm_task"

// WithTask labels the context with what the request is for ("hint",
// "challenge-question"), so failure lines say which feature degraded.
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, taskKey, task)
}

// TaskFrom extracts the task label, "unknown" when absent.
func TaskFrom(ctx context.Context) string {
	if v, ok := ctx.Value(taskKey).(string); ok {
		return v
	}
	return "unknown"
}

// diagnosticsProvider reports failed requests to stderr. Failures at
// this layer never reach the player, so a log line is all the handling
// they get.
type diagnosticsProvider struct {
	inner Provider
}

// WithDiagnostics wraps a Provider with failure reporting.
func WithDiagnostics(p Provider) Provider {
	return &diagnosticsProvider{inner: p}
}

func (d *diagnosticsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := d.inner.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: llm request (%s, task=%s) failed after %dms: %v\n",
			d.inner.ModelID(), TaskFrom(ctx), time.Since(start).Milliseconds(), err)
	}
	return resp, err
}

func (d *diagnosticsProvider) ModelID() string {
	return d.inner.ModelID()
}
