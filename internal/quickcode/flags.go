package quickcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how "failed fitting" is represented.
type Mode int

const (
	// Checkbox carries failed fitting as its own flag; LSB ranges over {0,1}.
	Checkbox Mode = iota
	// Legacy folds failed fitting into LSB == -1.
	Legacy
)

func (m Mode) String() string {
	if m == Legacy {
		return "legacy"
	}
	return "checkbox"
}

// ParseMode accepts "legacy" or "checkbox" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checkbox", "":
		return Checkbox, nil
	case "legacy":
		return Legacy, nil
	}
	return Checkbox, fmt.Errorf("unknown failed fitting mode %q (want legacy or checkbox)", s)
}

// Visibility gates the optional flag letters a, r and n.
type Visibility struct {
	ShowAwesomeFlag    bool
	ShowValidRedshift  bool
	ShowVisibleNucleus bool
}

// AllVisible enables every optional flag.
var AllVisible = Visibility{ShowAwesomeFlag: true, ShowValidRedshift: true, ShowVisibleNucleus: true}

// Slot is a classification value that may be unset.
type Slot struct {
	Value int
	Valid bool
}

// None is the unset slot.
var None = Slot{}

// Some returns a set slot holding v.
func Some(v int) Slot { return Slot{Value: v, Valid: true} }

// Is reports whether the slot is set to v.
func (s Slot) Is(v int) bool { return s.Valid && s.Value == v }

func (s Slot) String() string {
	if !s.Valid {
		return "unset"
	}
	return strconv.Itoa(s.Value)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.Value)), nil
}

func (s *Slot) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = None
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	*s = Some(v)
	return nil
}

// MarshalYAML renders an unset slot as null.
func (s Slot) MarshalYAML() (any, error) {
	if !s.Valid {
		return nil, nil
	}
	return s.Value, nil
}

// Flags is one classification as edited in the form.
type Flags struct {
	LSB            Slot `json:"lsb_class"`
	Morphology     Slot `json:"morphology"`
	Awesome        bool `json:"awesome_flag"`
	ValidRedshift  bool `json:"valid_redshift"`
	VisibleNucleus bool `json:"visible_nucleus"`
	FailedFitting  bool `json:"failed_fitting"`
}

// Complete reports whether both required slots are set.
func (f Flags) Complete() bool { return f.LSB.Valid && f.Morphology.Valid }

// Normalize projects f onto the values a form can actually hold under the
// given mode and visibility.
func (f Flags) Normalize(mode Mode, vis Visibility) Flags {
	if !validLSB(f.LSB, mode) {
		f.LSB = None
	}
	if !validMorphology(f.Morphology) {
		f.Morphology = None
	}
	f.Awesome = f.Awesome && vis.ShowAwesomeFlag
	f.ValidRedshift = f.ValidRedshift && vis.ShowValidRedshift
	f.VisibleNucleus = f.VisibleNucleus && vis.ShowVisibleNucleus
	f.FailedFitting = f.FailedFitting && mode == Checkbox
	return f
}

func validLSB(s Slot, mode Mode) bool {
	if !s.Valid {
		return true
	}
	switch s.Value {
	case 0, 1:
		return true
	case -1:
		return mode == Legacy
	}
	return false
}

func validMorphology(s Slot) bool {
	return !s.Valid || (s.Value >= -1 && s.Value <= 2)
}

// Option is a selectable value with its display label.
type Option struct {
	Value int
	Label string
}

// LSBOptions lists the LSB choices for mode. Failed fitting only appears
// in legacy mode.
func LSBOptions(mode Mode) []Option {
	opts := []Option{
		{Value: 0, Label: "Non-LSB [0]"},
		{Value: 1, Label: "LSB [1]"},
	}
	if mode == Legacy {
		opts = append([]Option{{Value: -1, Label: "Failed fitting [-1]"}}, opts...)
	}
	return opts
}

// MorphologyOptions lists the morphology choices.
func MorphologyOptions() []Option {
	return []Option{
		{Value: -1, Label: "Featureless [-]"},
		{Value: 0, Label: "Not sure (Irr/other) [0]"},
		{Value: 1, Label: "LTG (Sp) [1]"},
		{Value: 2, Label: "ETG (Ell) [2]"},
	}
}
