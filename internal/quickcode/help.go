package quickcode

import (
	"fmt"
	"strings"
)

var flagNames = map[rune]string{
	letterAwesome:  "awesome",
	letterRedshift: "redshift",
	letterNucleus:  "nucleus",
	letterFailed:   "failed fitting",
}

// AllowedChars lists the lower-case characters accepted under mode and vis,
// in display order.
func AllowedChars(mode Mode, vis Visibility) []rune {
	out := []rune{'-', '0', '1', '2'}
	for _, r := range []rune{letterAwesome, letterRedshift, letterNucleus, letterFailed} {
		if enabled(r, mode, vis) {
			out = append(out, r)
		}
	}
	return out
}

// Placeholder returns example codes for an empty input field.
func Placeholder(mode Mode, vis Visibility) string {
	var examples []string
	if mode == Legacy {
		examples = append(examples, "-1")
	}
	examples = append(examples, "0-", "1-")
	withFlags := "12"
	for _, r := range []rune{letterRedshift, letterAwesome, letterNucleus, letterFailed} {
		if enabled(r, mode, vis) {
			withFlags += string(r)
		}
	}
	if withFlags != "12" {
		examples = append(examples, withFlags)
	}
	return "Example: " + strings.Join(examples, " or ")
}

// FormatHint describes the code layout shown under the input field.
func FormatHint(mode Mode, vis Visibility) string {
	lsb := "0/1"
	if mode == Legacy {
		lsb = "-/0/1"
	}
	var letters, names []string
	for _, r := range AllowedChars(mode, vis)[4:] {
		letters = append(letters, fmt.Sprintf("%q", string(r)))
		names = append(names, flagNames[r])
	}
	flags := ""
	if len(letters) > 0 {
		flags = fmt.Sprintf(" (add %s for %s)", strings.Join(letters, ", "), strings.Join(names, ", "))
	}
	return fmt.Sprintf("Format: [LSB: %s] [Morph: -/0/1/2]%s. Press Enter to submit.", lsb, flags)
}

// FlagName returns the human name of a flag letter, or "" if r is not one.
func FlagName(r rune) string { return flagNames[toLower(r)] }
