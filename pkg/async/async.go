package async

import (
	"context"
	"time"
)

// Future represents the pending result of a computation started with Run.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion up to the given duration.
// It returns ErrTimeout if the computation is still pending when the
// timer fires; the computation itself keeps running.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn on its own goroutine and returns a Future for its result.
// A context canceled before fn starts resolves the future with ctx.Err()
// without invoking fn; once fn has started it runs to completion.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// WaitAll awaits every future in order and collects their results.
// It returns the first error encountered along with the results gathered
// so far.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
