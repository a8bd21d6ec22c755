package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the computation is
	// still pending after the timeout elapses.
	ErrTimeout = errors.New("async: await timed out")
)
