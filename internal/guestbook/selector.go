package guestbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelector is returned for max-comments values that are neither
// "all" nor a non-negative integer.
var ErrInvalidSelector = errors.New("invalid max-comments selector")

// SelectorAll is the wire value that lifts the comment limit.
const SelectorAll = "all"

// Selector limits how many comments a fetch returns.
type Selector struct {
	limit int // -1 means all
}

// All selects every comment.
func All() Selector { return Selector{limit: -1} }

// Limit selects at most n comments. Negative n selects all.
func Limit(n int) Selector {
	if n < 0 {
		return All()
	}
	return Selector{limit: n}
}

// ParseSelector parses "all" or a non-negative integer.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, SelectorAll) {
		return All(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	return Limit(n), nil
}

// IsAll reports whether the selector is unlimited.
func (s Selector) IsAll() bool { return s.limit < 0 }

// Max returns the limit, or -1 for all.
func (s Selector) Max() int { return s.limit }

// String renders the query-string value.
func (s Selector) String() string {
	if s.IsAll() {
		return SelectorAll
	}
	return strconv.Itoa(s.limit)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
