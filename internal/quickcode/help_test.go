package quickcode

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAllowedChars(t *testing.T) {
	if got := string(AllowedChars(Checkbox, AllVisible)); got != "-012arnf" {
		t.Fatalf("AllowedChars = %q", got)
	}
	if got := string(AllowedChars(Legacy, Visibility{ShowValidRedshift: true})); got != "-012r" {
		t.Fatalf("AllowedChars = %q", got)
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder(Legacy, AllVisible); got != "Example: -1 or 0- or 1- or 12ran" {
		t.Fatalf("legacy placeholder = %q", got)
	}
	if got := Placeholder(Checkbox, AllVisible); got != "Example: 0- or 1- or 12ranf" {
		t.Fatalf("checkbox placeholder = %q", got)
	}
	if got := Placeholder(Legacy, Visibility{}); got != "Example: -1 or 0- or 1-" {
		t.Fatalf("bare legacy placeholder = %q", got)
	}
}

func TestFormatHint(t *testing.T) {
	got := FormatHint(Checkbox, onlyAwesome)
	want := `Format: [LSB: 0/1] [Morph: -/0/1/2] (add "a", "f" for awesome, failed fitting). Press Enter to submit.`
	if got != want {
		t.Fatalf("FormatHint =\n%s\nwant\n%s", got, want)
	}
	if got := FormatHint(Legacy, Visibility{}); strings.Contains(got, "add") || !strings.Contains(got, "[LSB: -/0/1]") {
		t.Fatalf("legacy hint without flags = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	f := Flags{LSB: Some(-1), Morphology: Some(3), Awesome: true, ValidRedshift: true, VisibleNucleus: true, FailedFitting: true}
	got := f.Normalize(Checkbox, onlyAwesome)
	want := Flags{Awesome: true, FailedFitting: true}
	if got != want {
		t.Fatalf("Normalize = %+v, want %+v", got, want)
	}
	got = f.Normalize(Legacy, AllVisible)
	want = Flags{LSB: Some(-1), Awesome: true, ValidRedshift: true, VisibleNucleus: true}
	if got != want {
		t.Fatalf("legacy Normalize = %+v, want %+v", got, want)
	}
}

func TestSlotJSON(t *testing.T) {
	b, err := json.Marshal(Flags{LSB: Some(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"lsb_class":0`) || !strings.Contains(string(b), `"morphology":null`) {
		t.Fatalf("unexpected JSON: %s", b)
	}
	var back Flags
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != (Flags{LSB: Some(0)}) {
		t.Fatalf("unmarshal = %+v", back)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("LEGACY"); err != nil || m != Legacy {
		t.Fatalf("ParseMode(LEGACY) = %v, %v", m, err)
	}
	if m, err := ParseMode(""); err != nil || m != Checkbox {
		t.Fatalf("ParseMode(\"\") = %v, %v", m, err)
	}
	if _, err := ParseMode("radio"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
