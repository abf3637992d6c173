package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/sourcegraph/conc/pool"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic is wrapped by the error reported for a task that panicked.
var ErrPanic = errors.New("task panicked")

// Manager runs tasks on a bounded pool of goroutines and collects their errors.
//
// A Manager is single use: schedule with Go, then call Wait once.
type Manager struct {
	limit int
	pool  *pool.ErrorPool
}

// NewManager creates a Manager running at most maxGoroutine tasks at once.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		limit: maxGoroutine,
		pool:  pool.New().WithMaxGoroutines(maxGoroutine).WithErrors(),
	}
}

// Limit returns the maximum number of tasks running at once.
func (g *Manager) Limit() int {
	return g.limit
}

// Go schedules f and blocks until a worker is free.
//
// If ctx is already canceled when f would start, f is skipped and a warning is
// logged. A panic in f is logged with its stack and reported as ErrPanic.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	g.pool.Go(func() (err error) {
		if cerr := ctx.Err(); cerr != nil {
			slog.WarnContext(ctx, "task canceled before start", "because", cerr)
			return nil
		}

		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in task", "because", rvr, "stack", string(debug.Stack()))
				err = fmt.Errorf("%w: %v", ErrPanic, rvr)
			}
		}()

		return f(ctx)
	})
}

// Wait blocks until every scheduled task finishes and returns their errors joined.
func (g *Manager) Wait() error {
	return g.pool.Wait()
}
