package guestbook

import (
	"errors"
	"sync"
)

// ErrMissingRegion is returned when an operation needs a region that was
// not bound.
var ErrMissingRegion = errors.New("region not bound")

// Region is a named area of the host view. Replace swaps its whole content.
type Region interface {
	Replace(content string)
}

// Input supplies the current value of a form control.
type Input interface {
	Value() string
}

// InputFunc adapts a function to Input.
type InputFunc func() string

func (f InputFunc) Value() string { return f() }

// StaticInput is an Input with a fixed value.
type StaticInput string

func (s StaticInput) Value() string { return string(s) }

// Bindings are the regions a cycle reads from and writes to.
type Bindings struct {
	MaxComments Input
	Display     Region
	Chart       Region
	Feedback    Region
}

// Buffer is a Region that keeps its last content. It is safe for concurrent
// use, so a view can read it while a cycle writes.
type Buffer struct {
	mu      sync.RWMutex
	content string
	writes  int
}

func (b *Buffer) Replace(content string) {
	b.mu.Lock()
	b.content = content
	b.writes++
	b.mu.Unlock()
}

// String returns the current content.
func (b *Buffer) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// Writes counts Replace calls.
func (b *Buffer) Writes() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.writes
}
