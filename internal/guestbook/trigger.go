package guestbook

import (
	"context"
	"sync"
)

// Trigger signals that a view has finished mounting. Handlers registered
// with OnReady run once, in registration order, on the first Mount.
type Trigger struct {
	mu       sync.Mutex
	handlers []func(context.Context)
	fired    bool
}

// OnReady registers fn. Handlers added after the trigger fired never run.
func (t *Trigger) OnReady(fn func(context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired {
		return
	}
	t.handlers = append(t.handlers, fn)
}

// Mount fires the readiness event. It returns false if it already fired.
func (t *Trigger) Mount(ctx context.Context) bool {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	handlers := t.handlers
	t.handlers = nil
	t.mu.Unlock()

	for _, fn := range handlers {
		fn(ctx)
	}
	return true
}

// Fired reports whether Mount has run.
func (t *Trigger) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// OnReadyCycle wires the usual consumers: the comment list and, when the
// cycle has chart and feedback regions, the mood gauge.
func (t *Trigger) OnReadyCycle(c *Cycle, done func(list, gauge Result)) {
	t.OnReady(func(ctx context.Context) {
		list := c.Refresh(ctx)
		var gauge Result
		if c.bindings.Chart != nil && c.bindings.Feedback != nil {
			gauge = c.RenderMoodGauge(ctx)
		}
		if done != nil {
			done(list, gauge)
		}
	})
}
