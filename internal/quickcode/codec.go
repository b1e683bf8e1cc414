// Package quickcode implements the compact keyboard code used to enter a
// galaxy classification, e.g. "12ra" for LSB, ETG, valid redshift, awesome.
//
// A code is two positional slots (LSB, morphology) plus flag letters that
// may appear anywhere. Every function here is pure; mode and visibility are
// always passed in explicitly.
package quickcode

import (
	"strconv"
	"strings"
)

// Flag letters in canonical emission order.
const (
	letterRedshift = 'r'
	letterAwesome  = 'a'
	letterNucleus  = 'n'
	letterFailed   = 'f'
)

// enabled reports whether the lower-case flag letter r is recognized under
// mode and vis.
func enabled(r rune, mode Mode, vis Visibility) bool {
	switch r {
	case letterAwesome:
		return vis.ShowAwesomeFlag
	case letterRedshift:
		return vis.ShowValidRedshift
	case letterNucleus:
		return vis.ShowVisibleNucleus
	case letterFailed:
		return mode == Checkbox
	}
	return false
}

func isSlotChar(r rune) bool {
	return r == '-' || r == '0' || r == '1' || r == '2'
}

// FilterInput drops every character of raw that cannot be typed under mode
// and vis. Survivors keep their order and case.
func FilterInput(raw string, mode Mode, vis Visibility) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if isSlotChar(r) || enabled(toLower(r), mode, vis) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Decode parses code into Flags. Malformed or surplus characters degrade to
// unset slots; Decode never fails.
func Decode(code string, mode Mode, vis Visibility) Flags {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" {
		return Flags{}
	}

	f := Flags{
		Awesome:        vis.ShowAwesomeFlag && strings.ContainsRune(code, letterAwesome),
		ValidRedshift:  vis.ShowValidRedshift && strings.ContainsRune(code, letterRedshift),
		VisibleNucleus: vis.ShowVisibleNucleus && strings.ContainsRune(code, letterNucleus),
		FailedFitting:  mode == Checkbox && strings.ContainsRune(code, letterFailed),
	}

	slots := make([]rune, 0, 2)
	for _, r := range code {
		if enabled(r, mode, vis) {
			continue
		}
		slots = append(slots, r)
		if len(slots) == 2 {
			break
		}
	}
	if len(slots) > 0 {
		f.LSB = decodeLSB(slots[0], mode)
	}
	if len(slots) > 1 {
		f.Morphology = decodeMorphology(slots[1])
	}
	return f
}

func decodeLSB(r rune, mode Mode) Slot {
	switch r {
	case '-':
		if mode == Legacy {
			return Some(-1)
		}
	case '0':
		return Some(0)
	case '1':
		return Some(1)
	}
	return None
}

func decodeMorphology(r rune) Slot {
	switch r {
	case '-':
		return Some(-1)
	case '0', '1', '2':
		return Some(int(r - '0'))
	}
	return None
}

// Encode renders f as its canonical code. Flag letters are always emitted in
// the order r, a, n, f regardless of how they were entered.
func Encode(f Flags, mode Mode, vis Visibility) string {
	var b strings.Builder
	writeSlot(&b, f.LSB)
	writeSlot(&b, f.Morphology)
	if f.ValidRedshift && vis.ShowValidRedshift {
		b.WriteRune(letterRedshift)
	}
	if f.Awesome && vis.ShowAwesomeFlag {
		b.WriteRune(letterAwesome)
	}
	if f.VisibleNucleus && vis.ShowVisibleNucleus {
		b.WriteRune(letterNucleus)
	}
	if mode == Checkbox && f.FailedFitting {
		b.WriteRune(letterFailed)
	}
	return b.String()
}

func writeSlot(b *strings.Builder, s Slot) {
	if !s.Valid {
		return
	}
	if s.Value == -1 {
		b.WriteByte('-')
		return
	}
	b.WriteString(strconv.Itoa(s.Value))
}

// Toggle flips one flag letter in code: the first occurrence is removed if
// present, otherwise the letter is appended. Letters not enabled under mode
// and vis leave code unchanged.
func Toggle(code string, letter rune, mode Mode, vis Visibility) string {
	letter = toLower(letter)
	if !enabled(letter, mode, vis) {
		return code
	}
	code = strings.ToLower(code)
	if i := strings.IndexRune(code, letter); i >= 0 {
		return code[:i] + code[i+1:]
	}
	return code + string(letter)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
