package statusbar

import (
	"fmt"
	"strings"

	"galaxy-classify/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// Progress is the part of the catalog the user has finished.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.Screen, f state.Form, p Progress) string {
	focus := "[QUICK]"
	if s.Focus == state.Comments {
		focus = "[COMMENTS]"
	}
	mode := "Mode: " + f.Settings.Mode.String()
	ready := "Incomplete"
	if state.CanSubmit(f) {
		ready = "Ready"
	}
	progress := fmt.Sprintf("%d/%d (%d%%)", p.Completed, p.Total, p.Percent)

	parts := []string{focus, mode, ready, progress}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
