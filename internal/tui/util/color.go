package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
	OnAccent  lipgloss.Color
	OnWarning lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
		OnAccent:  lipgloss.Color("#FFFFFF"),
		OnWarning: lipgloss.Color("#111111"),
	}
}

// ContrastPalette returns the palette for a contrast group. Group 0 is the
// default palette; groups repeat every three.
func ContrastPalette(group int) Palette {
	p := DefaultPalette()
	switch group % 3 {
	case 1:
		p.Primary = lipgloss.Color("#6F94FF")
		p.Muted = lipgloss.Color("#9AA3AB")
		p.MutedDark = lipgloss.Color("#7D7D7D")
	case 2:
		p.Primary = lipgloss.Color("#FFFFFF")
		p.Success = lipgloss.Color("#00FF87")
		p.Danger = lipgloss.Color("#FF5F5F")
		p.Warning = lipgloss.Color("#FFD700")
		p.Muted = lipgloss.Color("#D0D0D0")
		p.MutedDark = lipgloss.Color("#B0B0B0")
		p.OnAccent = lipgloss.Color("#000000")
	}
	return p
}
