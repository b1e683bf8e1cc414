package editor

import (
	"fmt"
	"strings"

	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the quick input field: the code with a cursor when focused,
// or the placeholder when empty, followed by the format hint.
func (Editor) View(s state.Screen, f state.Form) string {
	mode, vis := f.Settings.Mode, f.Settings.Visibility
	header := "Quick input"
	if s.Focus == state.QuickInput {
		header += " [active]"
	}
	field := f.Code
	switch {
	case field == "":
		field = quickcode.Placeholder(mode, vis)
	case s.Focus == state.QuickInput:
		field += "_"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header)
	fmt.Fprintf(&b, "> %s\n", field)
	fmt.Fprintf(&b, "%s\n", quickcode.FormatHint(mode, vis))
	return b.String()
}
