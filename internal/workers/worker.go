// Package workers provides abstractions for managing and running
// background workers in the roster-sync client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's background processing and returns promptly;
// Stop signals the worker to exit and blocks until it has fully terminated.
// Stop must be safe to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
