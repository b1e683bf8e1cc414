package util

import (
	"galaxy-classify/internal/tui/state"
)

// ComputeTags returns the status chips for a form.
//
// The returned slice preserves a stable order:
//
//	Awesome, Redshift, Nucleus, Failed, Saved, Edited
//
// Rules:
//   - Flag chips mirror the form's flags, which are already restricted to the
//     flags enabled by the current settings.
//   - Saved means a stored classification was loaded and the code still matches it.
//   - Edited means the code differs from the stored one, or something was typed
//     for a galaxy with no stored classification.
func ComputeTags(f state.Form) []state.Tag {
	tags := make([]state.Tag, 0, 6)

	if f.Flags.Awesome {
		tags = append(tags, state.Tag{Kind: state.AWESOME})
	}
	if f.Flags.ValidRedshift {
		tags = append(tags, state.Tag{Kind: state.REDSHIFT})
	}
	if f.Flags.VisibleNucleus {
		tags = append(tags, state.Tag{Kind: state.NUCLEUS})
	}
	if f.Flags.FailedFitting {
		tags = append(tags, state.Tag{Kind: state.FAILED})
	}

	switch {
	case f.AppliedID != "" && !state.Dirty(f):
		tags = append(tags, state.Tag{Kind: state.SAVED})
	case state.Dirty(f):
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}
	return tags
}
