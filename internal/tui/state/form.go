package state

import (
	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
)

// NewForm returns an empty form under settings.
func NewForm(s config.Settings) Form {
	return Form{Settings: s}
}

// Reset clears the form for a new galaxy.
func Reset(f Form, galaxyID string) Form {
	return Form{GalaxyID: galaxyID, Settings: f.Settings}
}

// ApplySaved seeds the form from a saved classification. Each record is
// applied once, and only to the galaxy it belongs to.
func ApplySaved(f Form, rec Record) Form {
	if rec.GalaxyID != f.GalaxyID || rec.ID == "" || rec.ID == f.AppliedID {
		return f
	}
	mode, vis := f.Settings.Mode, f.Settings.Visibility
	f.Flags = rec.Flags.Normalize(mode, vis)
	f.Comments = rec.Comments
	f.Code = quickcode.Encode(f.Flags, mode, vis)
	f.Saved = f.Code
	f.AppliedID = rec.ID
	return f
}

// TypeCode replaces the quick code with raw and re-derives every flag from
// it, so deleting characters clears values.
func TypeCode(f Form, raw string) Form {
	mode, vis := f.Settings.Mode, f.Settings.Visibility
	f.Code = quickcode.FilterInput(raw, mode, vis)
	f.Flags = quickcode.Decode(f.Code, mode, vis)
	return f
}

// setFlags applies a control change. Values that do not survive
// normalization leave the form as it was.
func setFlags(f Form, next quickcode.Flags) Form {
	mode, vis := f.Settings.Mode, f.Settings.Visibility
	if next.Normalize(mode, vis) != next {
		return f
	}
	f.Flags = next
	f.Code = quickcode.Encode(next, mode, vis)
	return f
}

func SetLSB(f Form, v quickcode.Slot) Form {
	next := f.Flags
	next.LSB = v
	return setFlags(f, next)
}

func SetMorphology(f Form, v quickcode.Slot) Form {
	next := f.Flags
	next.Morphology = v
	return setFlags(f, next)
}

func SetAwesome(f Form, on bool) Form {
	next := f.Flags
	next.Awesome = on
	return setFlags(f, next)
}

func SetValidRedshift(f Form, on bool) Form {
	next := f.Flags
	next.ValidRedshift = on
	return setFlags(f, next)
}

func SetVisibleNucleus(f Form, on bool) Form {
	next := f.Flags
	next.VisibleNucleus = on
	return setFlags(f, next)
}

// SetFailedFitting only has an effect in checkbox mode.
func SetFailedFitting(f Form, on bool) Form {
	next := f.Flags
	next.FailedFitting = on
	return setFlags(f, next)
}

// SetComments replaces the free-text comments.
func SetComments(f Form, text string) Form {
	f.Comments = text
	return f
}

// ToggleFlag adds or removes a flag letter from the code, as the quick input
// does for a single key press.
func ToggleFlag(f Form, letter rune) Form {
	return TypeCode(f, quickcode.Toggle(f.Code, letter, f.Settings.Mode, f.Settings.Visibility))
}

// CycleLSB steps unset, first option, ..., last option, unset.
func CycleLSB(f Form) Form {
	return SetLSB(f, nextOption(f.Flags.LSB, quickcode.LSBOptions(f.Settings.Mode)))
}

// CycleMorphology steps through the morphology options the same way.
func CycleMorphology(f Form) Form {
	return SetMorphology(f, nextOption(f.Flags.Morphology, quickcode.MorphologyOptions()))
}

func nextOption(cur quickcode.Slot, opts []quickcode.Option) quickcode.Slot {
	if !cur.Valid {
		return quickcode.Some(opts[0].Value)
	}
	for i, o := range opts {
		if o.Value == cur.Value {
			if i+1 < len(opts) {
				return quickcode.Some(opts[i+1].Value)
			}
			return quickcode.None
		}
	}
	return quickcode.Some(opts[0].Value)
}

// ApplySettings switches the form to new settings and re-reads the current
// code under them.
func ApplySettings(f Form, s config.Settings) Form {
	f.Settings = s
	return TypeCode(f, f.Code)
}

// CanSubmit reports whether the required fields are set.
func CanSubmit(f Form) bool { return f.Flags.Complete() }

// Dirty reports whether the code differs from the saved classification.
func Dirty(f Form) bool { return f.Code != f.Saved }
