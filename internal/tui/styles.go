package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/guestbook"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	orangeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)

	commentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func tierStyle(t guestbook.Tier) lipgloss.Style {
	switch t {
	case guestbook.TierNegative:
		return redStyle
	case guestbook.TierNeutral:
		return orangeStyle
	default:
		return greenStyle
	}
}

// gaugeBar draws mood on a 0..100 bar. Cells past the green threshold are
// drawn green, the rest in the tier colour of the value.
func gaugeBar(mood, width int) string {
	if width <= 0 {
		width = 30
	}
	filled := int(float64(mood) / guestbook.GaugeMax * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	greenAt := int(guestbook.GreenFrom / guestbook.GaugeMax * float64(width))
	fill := tierStyle(guestbook.TierFor(float64(mood)))

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i < filled && i >= greenAt:
			b.WriteString(greenStyle.Render("█"))
		case i < filled:
			b.WriteString(fill.Render("█"))
		case i >= greenAt:
			b.WriteString(greenStyle.Faint(true).Render("░"))
		default:
			b.WriteString("░")
		}
	}
	b.WriteString("]")
	return b.String()
}
