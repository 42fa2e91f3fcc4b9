package doppler

import (
	"context"
	"sync"
)

var (
	sharedMu     sync.Mutex
	sharedClient *Client
)

// Shared returns the process-wide client, creating it on the first
// successful call. Later calls return the same client and ignore their
// arguments. A failed call leaves nothing behind, so the next call tries
// again.
func Shared(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedClient != nil {
		return sharedClient, nil
	}

	c, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	sharedClient = c
	return c, nil
}
