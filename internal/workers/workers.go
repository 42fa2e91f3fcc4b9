package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-doppler-env/internal/logger"
)

type Workers struct {
	wg     sync.WaitGroup
	logger *logger.Logger
}

func NewWorkers(log *logger.Logger) *Workers {
	if log == nil {
		log = logger.Nop()
	}
	return &Workers{logger: log}
}

// Start runs worker in its own goroutine. The worker gets a context that
// keeps the values of ctx but is never cancelled with it.
func (w *Workers) Start(ctx context.Context, name string, worker Worker) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		if err := w.run(context.WithoutCancel(ctx), worker); err != nil {
			w.logger.Err(err).Str("worker", name).Msg("background worker failed")
		}
	}()
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

func (w *Workers) run(ctx context.Context, worker Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panicked: %v", r)
		}
	}()

	return worker.Run(ctx)
}
