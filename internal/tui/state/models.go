package state

import (
	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
)

// Focus is the input that receives key presses.
type Focus int

const (
	QuickInput Focus = iota
	Comments
)

func (f Focus) String() string {
	if f == Comments {
		return "comments"
	}
	return "quick input"
}

// Screen holds cross-widget UI state used by the status bar, help overlay
// and image controls.
type Screen struct {
	Focus    Focus
	ShowHelp bool
	Width    int

	// Contrast is the selected contrast group, 0-based.
	Contrast int

	// Notices and ephemeral messages
	Notice string
}

// Form is the classification being edited for one galaxy.
type Form struct {
	GalaxyID string
	Flags    quickcode.Flags
	Comments string
	Code     string
	Settings config.Settings

	// AppliedID is the saved record already copied into the form.
	AppliedID string
	// Saved is the quick code of the saved record, "" when there is none.
	Saved string
}

// Record is a previously saved classification offered to ApplySaved.
type Record struct {
	ID       string
	GalaxyID string
	Flags    quickcode.Flags
	Comments string
}
