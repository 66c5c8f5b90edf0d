package gate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wallet-console/internal/session"
)

// SessionObserver is the slice of the session store the controller needs.
type SessionObserver interface {
	Observe() (<-chan session.Snapshot, func())
}

// Controller tracks the live gate state for a session stream and applies
// the unresolved-too-long timeout.
type Controller struct {
	store          SessionObserver
	resolveTimeout time.Duration

	mu  sync.Mutex
	res Resolution
}

func NewController(store SessionObserver, resolveTimeout time.Duration) *Controller {
	return &Controller{
		store:          store,
		resolveTimeout: resolveTimeout,
		res:            Resolution{State: StateUnresolved},
	}
}

// Current returns the latest resolution.
func (c *Controller) Current() Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.res
}

// Run consumes the session stream until ctx is done. It keeps Current()
// in step with the store and flips TimedOut when a profile fetch leaves
// the gate Unresolved past the configured budget.
func (c *Controller) Run(ctx context.Context) {
	snapshots, cancel := c.store.Observe()
	defer cancel()

	var timeout <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-snapshots:
			if !ok {
				return
			}

			res, err := Resolve(snap)
			if err != nil {
				slog.Error("session resolved to an unrecognized account state", "error", err.Error())
			}

			if res.State == StateUnresolved {
				if timeout == nil {
					timeout = time.After(c.resolveTimeout)
				}
			} else {
				timeout = nil
			}

			c.mu.Lock()
			c.res = res
			c.mu.Unlock()

		case <-timeout:
			timeout = nil
			c.mu.Lock()
			if c.res.State == StateUnresolved {
				c.res.TimedOut = true
			}
			c.mu.Unlock()
		}
	}
}
