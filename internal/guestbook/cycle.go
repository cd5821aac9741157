// Package guestbook fetches mood comments from a Source and renders them
// into the regions of a host view: the comment list, an average-mood gauge
// and a feedback line.
//
// A Cycle moves Idle -> Fetching -> Rendered, Empty or Failed on every
// fetch. A failed fetch leaves the regions as they were and reports the
// error in the Result. Operations on one Cycle never overlap.
package guestbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Zachkp/portfolio/internal/model"
)

// State is where a cycle stands after its last operation.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateRendered
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of one cycle operation. Mood is only set by
// RenderMoodGauge.
type Result struct {
	State State
	Count int
	Mood  int
	Err   error
}

// OK reports whether the operation rendered something.
func (r Result) OK() bool {
	return r.Err == nil && (r.State == StateRendered || r.State == StateEmpty)
}

// Option configures a Cycle.
type Option func(*Cycle)

// WithLogger sets the logger used for failed operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cycle) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Cycle runs the fetch-and-render operations against one set of bindings.
type Cycle struct {
	source   Source
	renderer Renderer
	bindings Bindings
	logger   *slog.Logger

	mu    sync.Mutex // held for a whole operation
	state State
}

// NewCycle binds a source and renderer to the host regions. The display
// region is required; chart and feedback are only needed for the gauge.
func NewCycle(source Source, renderer Renderer, bindings Bindings, opts ...Option) (*Cycle, error) {
	if source == nil {
		return nil, errors.New("guestbook: nil source")
	}
	if renderer == nil {
		return nil, errors.New("guestbook: nil renderer")
	}
	if bindings.Display == nil {
		return nil, fmt.Errorf("display: %w", ErrMissingRegion)
	}
	c := &Cycle{
		source:   source,
		renderer: renderer,
		bindings: bindings,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the state left by the last operation.
func (c *Cycle) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// FetchAndRender fetches up to sel comments and replaces the display with
// one element per comment in the order received, or with the empty
// placeholder.
func (c *Cycle) FetchAndRender(ctx context.Context, sel Selector) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchAndRender(ctx, sel)
}

// Refresh reads the max-comments input and fetches with it. A missing or
// blank input selects all comments.
func (c *Cycle) Refresh(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh(ctx)
}

// DeleteAll clears the comments on the source and then refreshes the
// display. The refresh starts only after the delete has returned, and runs
// even when the delete failed so the display shows what the source holds.
func (c *Cycle) DeleteAll(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	delErr := c.source.DeleteAll(ctx)
	if delErr != nil {
		c.logger.Error("delete comments failed", "error", delErr)
	}

	res := c.refresh(ctx)
	if delErr != nil {
		res.Err = errors.Join(delErr, res.Err)
		res.State = StateFailed
		c.state = StateFailed
	}
	return res
}

// RenderMoodGauge fetches every comment, draws the gauge for the average
// mood and writes the feedback line.
func (c *Cycle) RenderMoodGauge(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bindings.Chart == nil || c.bindings.Feedback == nil {
		return c.fail(fmt.Errorf("chart and feedback: %w", ErrMissingRegion))
	}

	comments, err := c.fetch(ctx, All())
	if err != nil {
		return c.fail(err)
	}

	mood := AverageMood(comments)
	c.bindings.Chart.Replace(c.renderer.Gauge(mood))
	c.bindings.Feedback.Replace(c.renderer.Feedback(mood))

	res := Result{State: StateRendered, Count: len(comments), Mood: mood}
	if len(comments) == 0 {
		res.State = StateEmpty
	}
	c.state = res.State
	return res
}

func (c *Cycle) refresh(ctx context.Context) Result {
	sel := All()
	if in := c.bindings.MaxComments; in != nil {
		if v := in.Value(); !isBlank(v) {
			parsed, err := ParseSelector(v)
			if err != nil {
				return c.fail(err)
			}
			sel = parsed
		}
	}
	return c.fetchAndRender(ctx, sel)
}

func (c *Cycle) fetchAndRender(ctx context.Context, sel Selector) Result {
	comments, err := c.fetch(ctx, sel)
	if err != nil {
		return c.fail(err)
	}

	if len(comments) == 0 {
		c.bindings.Display.Replace(c.renderer.Empty())
		c.state = StateEmpty
		return Result{State: StateEmpty}
	}

	elems := make([]string, 0, len(comments))
	for _, comment := range comments {
		elems = append(elems, c.renderer.Comment(comment))
	}
	c.bindings.Display.Replace(strings.Join(elems, "\n"))
	c.state = StateRendered
	return Result{State: StateRendered, Count: len(comments)}
}

func (c *Cycle) fetch(ctx context.Context, sel Selector) ([]model.Comment, error) {
	c.state = StateFetching
	return c.source.Comments(ctx, sel)
}

func (c *Cycle) fail(err error) Result {
	c.logger.Error("guestbook cycle failed", "error", err)
	c.state = StateFailed
	return Result{State: StateFailed, Err: err}
}
