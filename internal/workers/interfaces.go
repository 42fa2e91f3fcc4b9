// Package workers runs background work detached from the caller.
// A failed or panicking worker is reported through the logger and never
// propagates to the code that started it.
package workers

import "context"

// Worker is a unit of background work.
//
// Example implementation:
//
//	type backupWorker struct{ path string }
//
//	func (w *backupWorker) Run(ctx context.Context) error {
//	    return writeBackup(ctx, w.path)
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
