package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/guestbook"
	"github.com/Zachkp/portfolio/internal/model"
)

// Renderer draws guestbook regions for the terminal.
type Renderer struct {
	Location *time.Location
	BarWidth int
}

func (r Renderer) Comment(c model.Comment) string {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	mood := tierStyle(guestbook.TierFor(c.Mood)).Render(guestbook.FormatMood(c.Mood))
	lines := []string{
		nameStyle.Render(guestbook.DisplayName(c)),
		"Mood: " + mood + "/100",
		mutedStyle.Render(c.Time().In(loc).Format(guestbook.DateLayout)),
	}
	if text := strings.TrimSpace(c.Text); text != "" {
		lines = append(lines, text)
	}
	return commentStyle.Render(strings.Join(lines, "\n"))
}

func (r Renderer) Empty() string {
	return mutedStyle.Render(guestbook.EmptyMessage)
}

func (r Renderer) Gauge(mood int) string {
	return fmt.Sprintf("%s %d/100", gaugeBar(mood, r.BarWidth), mood)
}

func (r Renderer) Feedback(mood int) string {
	tier := guestbook.TierFor(float64(mood))
	return "Average mood is " + tierStyle(tier).Render(strconv.Itoa(mood)) + tier.Message()
}
