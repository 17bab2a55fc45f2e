// Package async holds the only blocking helpers of the module: a fixed delay and
// an all-must-succeed fan-out.
package async

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-fp/envutil"
	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/logger"
	"go.uber.org/atomic"
)

// MaxConcurrencyEnv names the environment variable read by All. Zero or unset
// means every task runs at once.
const MaxConcurrencyEnv = "ASYNC_MAX_CONCURRENCY"

var errNegativeLimit = errors.New("concurrency limit must not be negative")

// Delay blocks the calling goroutine until d has elapsed. It cannot be
// cancelled once started. Non-positive durations return immediately.
func Delay(d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	<-timer.C
}

// Task is one independent unit of work run by All.
type Task[T any] func(ctx context.Context) (T, error)

// All runs every task concurrently and returns their results in submission
// order. The concurrency limit comes from ASYNC_MAX_CONCURRENCY.
//
// See AllWithLimit for the failure semantics.
func All[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	limit := envutil.Int[int](ctx, MaxConcurrencyEnv,
		envutil.Default(0),
		envutil.Validate(func(n int) error {
			if n < 0 {
				return fmt.Errorf("%w: %d", errNegativeLimit, n)
			}

			return nil
		})).ValueOrElse(0)

	return AllWithLimit(ctx, limit, tasks...)
}

// AllWithLimit runs tasks with at most limit of them in flight (limit < 1 means
// no bound) and returns their results in submission order.
//
// The first task to fail decides the outcome and AllWithLimit returns that error,
// unchanged and with no results, as soon as it happens. The context handed to
// the other tasks is cancelled and tasks that have not started are skipped. The
// pool is drained in the background, so a task that ignores its context may
// still be running after AllWithLimit returns. A panicking task fails with an
// error wrapping errors.ErrPanicRecovered.
func AllWithLimit[T any](ctx context.Context, limit int, tasks ...Task[T]) ([]T, error) {
	if len(tasks) == 0 {
		return []T{}, nil
	}

	if limit < 1 || limit > len(tasks) {
		limit = len(tasks)
	}

	ctx, cancel := context.WithCancel(ctx)

	var cancelOnce sync.Once
	defer cancelOnce.Do(cancel)

	log := logger.Get(ctx)
	log.Debug("starting tasks", "count", len(tasks), "limit", limit)

	var (
		firstErr  = atomic.NewError(nil)
		completed = atomic.NewInt64(0)
		failed    = make(chan struct{})
	)

	pool := pond.NewResultPool[T](limit)
	group := pool.NewGroupContext(ctx)

	for i, task := range tasks {
		group.SubmitErr(func() (T, error) {
			result, err := invoke(ctx, task)
			if err != nil {
				if firstErr.CompareAndSwap(nil, err) {
					log.Debug("task failed, cancelling the rest", "index", i, "error", err)
					close(failed)
				}

				cancelOnce.Do(cancel)

				return result, err
			}

			completed.Inc()

			return result, nil
		})
	}

	type outcome struct {
		results []T
		err     error
	}

	done := make(chan outcome, 1)

	go func() {
		results, err := group.Wait()
		pool.StopAndWait()

		done <- outcome{results: results, err: err}
	}()

	select {
	case <-failed:
		log.Debug("tasks failed", "completed", completed.Load(), "count", len(tasks))

		return nil, firstErr.Load()
	case out := <-done:
		if failure := firstErr.Load(); failure != nil {
			return nil, failure
		}

		if out.err != nil {
			return nil, out.err
		}

		log.Debug("tasks finished", "completed", completed.Load())

		return out.results, nil
	}
}

// invoke runs task, skipping it when ctx is already done and turning a panic
// into an error.
func invoke[T any](ctx context.Context, task Task[T]) (result T, err error) { //nolint:nonamedreturns
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w\n%s", amperrors.ErrPanicRecovered, e, debug.Stack())
			} else {
				err = fmt.Errorf("%w: %v\n%s", amperrors.ErrPanicRecovered, r, debug.Stack())
			}
		}
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	return task(ctx)
}
