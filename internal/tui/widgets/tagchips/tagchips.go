package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"galaxy-classify/internal/tui/state"
	"galaxy-classify/internal/tui/util"
)

// View renders form tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool, p util.Palette) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor, p))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool, p util.Palette) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t, p).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.AWESOME:
		return "Awesome"
	case state.REDSHIFT:
		return "Valid redshift"
	case state.NUCLEUS:
		return "Visible nucleus"
	case state.FAILED:
		return "Failed fitting"
	case state.SAVED:
		return "Saved"
	case state.EDITED:
		return "Edited"
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch t.Kind {
	case state.AWESOME:
		return base.Background(p.Primary).Foreground(p.OnAccent)
	case state.REDSHIFT:
		return base.Background(p.Success).Foreground(p.OnAccent)
	case state.NUCLEUS:
		return base.Background(p.Muted).Foreground(p.OnAccent)
	case state.FAILED:
		return base.Background(p.Danger).Foreground(p.OnAccent)
	case state.SAVED:
		return base.Background(p.MutedDark).Foreground(p.OnAccent)
	case state.EDITED:
		return base.Background(p.Warning).Foreground(p.OnWarning)
	default:
		return base
	}
}
