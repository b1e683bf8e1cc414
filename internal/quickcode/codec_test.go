package quickcode

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	modes = []Mode{Legacy, Checkbox}

	onlyAwesome = Visibility{ShowAwesomeFlag: true}
)

// allVisibilities enumerates the 8 combinations of the three show flags.
func allVisibilities() []Visibility {
	out := make([]Visibility, 0, 8)
	for i := 0; i < 8; i++ {
		out = append(out, Visibility{
			ShowAwesomeFlag:    i&1 != 0,
			ShowValidRedshift:  i&2 != 0,
			ShowVisibleNucleus: i&4 != 0,
		})
	}
	return out
}

func TestDecodeExamples(t *testing.T) {
	tests := []struct {
		name string
		code string
		mode Mode
		vis  Visibility
		want Flags
	}{
		{"empty", "", Checkbox, AllVisible, Flags{}},
		{"blank", "   ", Legacy, AllVisible, Flags{}},
		{"non-lsb featureless", "0-", Checkbox, AllVisible, Flags{LSB: Some(0), Morphology: Some(-1)}},
		{"all flags", "12arn", Checkbox, AllVisible, Flags{
			LSB: Some(1), Morphology: Some(2), Awesome: true, ValidRedshift: true, VisibleNucleus: true,
		}},
		{"legacy failed fitting", "-1", Legacy, AllVisible, Flags{LSB: Some(-1), Morphology: Some(1)}},
		{"dash is not lsb in checkbox", "-1", Checkbox, AllVisible, Flags{Morphology: Some(1)}},
		{"flags anywhere", "a1r2", Checkbox, AllVisible, Flags{
			LSB: Some(1), Morphology: Some(2), Awesome: true, ValidRedshift: true,
		}},
		{"upper case and padding", "  1-AF ", Checkbox, AllVisible, Flags{
			LSB: Some(1), Morphology: Some(-1), Awesome: true, FailedFitting: true,
		}},
		{"duplicates harmless", "aa01aa", Checkbox, AllVisible, Flags{LSB: Some(0), Morphology: Some(1), Awesome: true}},
		{"f ignored in legacy", "f12", Legacy, AllVisible, Flags{Morphology: Some(1)}},
		{"hidden letter occupies a slot", "a12", Checkbox, Visibility{}, Flags{Morphology: Some(1)}},
		{"two in lsb slot", "21", Checkbox, AllVisible, Flags{Morphology: Some(1)}},
		{"extra characters ignored", "0122-", Checkbox, AllVisible, Flags{LSB: Some(0), Morphology: Some(1)}},
		{"lsb only", "1", Legacy, AllVisible, Flags{LSB: Some(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.code, tt.mode, tt.vis)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Decode(%q, %v) mismatch (-want +got):\n%s", tt.code, tt.mode, diff)
			}
		})
	}
}

func TestEncodeCanonicalOrder(t *testing.T) {
	f := Flags{LSB: Some(1), Morphology: Some(2), Awesome: true, ValidRedshift: true, FailedFitting: true}
	if got := Encode(f, Checkbox, AllVisible); got != "12raf" {
		t.Fatalf("Encode = %q, want %q", got, "12raf")
	}
	// failed fitting has no letter in legacy mode
	if got := Encode(f, Legacy, AllVisible); got != "12ra" {
		t.Fatalf("legacy Encode = %q, want %q", got, "12ra")
	}
	// hidden flags are never emitted
	if got := Encode(f, Checkbox, onlyAwesome); got != "12af" {
		t.Fatalf("Encode with hidden redshift = %q, want %q", got, "12af")
	}
	if got := Encode(Flags{LSB: Some(-1), Morphology: Some(-1)}, Legacy, AllVisible); got != "--" {
		t.Fatalf("Encode = %q, want %q", got, "--")
	}
	if got := Encode(Flags{}, Checkbox, AllVisible); got != "" {
		t.Fatalf("Encode(zero) = %q, want empty", got)
	}
}

func TestFilterInput(t *testing.T) {
	if got := FilterInput("1x2y!a", Checkbox, onlyAwesome); got != "12a" {
		t.Fatalf("FilterInput = %q, want %q", got, "12a")
	}
	if got := FilterInput("1x2y!ar", Checkbox, onlyAwesome); got != "12a" {
		t.Fatalf("disabled r should be dropped, got %q", got)
	}
	if got := FilterInput("-1FfA", Legacy, AllVisible); got != "-1A" {
		t.Fatalf("f is not typable in legacy mode, got %q", got)
	}
	if got := FilterInput("RaNf21", Checkbox, AllVisible); got != "RaNf21" {
		t.Fatalf("case and order should be preserved, got %q", got)
	}
	if got := FilterInput("xyz 3", Checkbox, AllVisible); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFilterInputIdempotent(t *testing.T) {
	inputs := []string{"", "1x2y!a", "RaNf21-", "  -- 00 ff ", "héllo 1 wörld 2", "ARNF-0123456789"}
	for _, mode := range modes {
		for _, vis := range allVisibilities() {
			for _, in := range inputs {
				once := FilterInput(in, mode, vis)
				if twice := FilterInput(once, mode, vis); twice != once {
					t.Fatalf("not idempotent for %q (%v %+v): %q then %q", in, mode, vis, once, twice)
				}
			}
		}
	}
}

// reachable enumerates every normalized Flags value for mode and vis.
func reachable(mode Mode, vis Visibility) []Flags {
	lsb := []Slot{None, Some(0), Some(1)}
	if mode == Legacy {
		lsb = append(lsb, Some(-1))
	}
	morph := []Slot{None, Some(-1), Some(0), Some(1), Some(2)}
	bools := []bool{false, true}
	var out []Flags
	for _, l := range lsb {
		for _, m := range morph {
			for _, a := range bools {
				for _, r := range bools {
					for _, n := range bools {
						for _, ff := range bools {
							f := Flags{LSB: l, Morphology: m, Awesome: a, ValidRedshift: r, VisibleNucleus: n, FailedFitting: ff}
							out = append(out, f.Normalize(mode, vis))
						}
					}
				}
			}
		}
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	for _, mode := range modes {
		for _, vis := range allVisibilities() {
			for _, f := range reachable(mode, vis) {
				if !f.LSB.Valid && f.Morphology.Valid {
					continue // covered by TestRoundTripUnsetLSBIsLossy
				}
				code := Encode(f, mode, vis)
				got := Decode(code, mode, vis)
				if diff := cmp.Diff(f, got); diff != "" {
					t.Fatalf("round trip via %q (%v %+v) mismatch (-want +got):\n%s", code, mode, vis, diff)
				}
			}
		}
	}
}

func TestRoundTripUnsetLSBIsLossy(t *testing.T) {
	// An absent LSB slot shifts the morphology digit into the LSB position.
	f := Flags{Morphology: Some(1)}
	code := Encode(f, Checkbox, AllVisible)
	if code != "1" {
		t.Fatalf("Encode = %q, want %q", code, "1")
	}
	got := Decode(code, Checkbox, AllVisible)
	if diff := cmp.Diff(Flags{LSB: Some(1)}, got); diff != "" {
		t.Fatalf("unexpected decode (-want +got):\n%s", diff)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	for _, code := range []string{"12arnf", "-0", "x1y2", "ffff"} {
		a := Decode(code, Checkbox, AllVisible)
		b := Decode(code, Checkbox, AllVisible)
		if a != b {
			t.Fatalf("Decode(%q) not deterministic: %+v vs %+v", code, a, b)
		}
	}
}

func TestDecodeOfFilteredEncodeIsStable(t *testing.T) {
	for _, mode := range modes {
		for _, vis := range allVisibilities() {
			for _, f := range reachable(mode, vis) {
				code := Encode(f, mode, vis)
				if filtered := FilterInput(code, mode, vis); filtered != code {
					t.Fatalf("encoded code %q not typable under %v %+v (filtered %q)", code, mode, vis, filtered)
				}
			}
		}
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		code   string
		letter rune
		mode   Mode
		vis    Visibility
		want   string
	}{
		{"12", 'a', Checkbox, AllVisible, "12a"},
		{"12a", 'a', Checkbox, AllVisible, "12"},
		{"1A2", 'a', Checkbox, AllVisible, "12"},
		{"12ra", 'R', Checkbox, AllVisible, "12a"},
		{"12", 'f', Legacy, AllVisible, "12"},
		{"12", 'n', Checkbox, onlyAwesome, "12"},
		{"12aa", 'a', Checkbox, AllVisible, "12a"},
		{"12", 'x', Checkbox, AllVisible, "12"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%c/%v", tt.code, tt.letter, tt.mode), func(t *testing.T) {
			if got := Toggle(tt.code, tt.letter, tt.mode, tt.vis); got != tt.want {
				t.Fatalf("Toggle = %q, want %q", got, tt.want)
			}
		})
	}
}
