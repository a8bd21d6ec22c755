// Package async provides a minimal typed future for running a single
// function off the calling goroutine and collecting its result later.
//
// Run starts the computation, Await (or AwaitWithTimeout) joins it, and
// WaitAll joins a batch in order:
//
//	future := async.Run(ctx, func(ctx context.Context) (bool, error) {
//		return client.UsernameAvailable(ctx, name)
//	})
//	ok, err := future.Await()
//
// Futures are safe to await from multiple goroutines; the computation runs
// exactly once and its outcome is immutable after completion. There is no
// cancellation of a computation that has already started — callers wanting
// early wakeup should use AwaitWithTimeout and let the goroutine finish in
// the background.
package async
