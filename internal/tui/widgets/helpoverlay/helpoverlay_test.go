package helpoverlay

import (
	"strings"
	"testing"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/tui/state"
)

func TestSectionsAndEnabledFlags(t *testing.T) {
	cfg := config.Settings{Mode: quickcode.Checkbox, Visibility: quickcode.Visibility{ShowAwesomeFlag: true}}
	out := NewHelpOverlay().View(state.Screen{}, cfg)
	for _, want := range []string{"Navigation:", "Image controls:", "Quick input:", "Help:", "a / alt+a: toggle awesome flag", "f / alt+f: toggle failed fitting flag"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "alt+r") {
		t.Fatalf("hidden redshift flag should not be listed")
	}
	if strings.Contains(out, "-1 = ") {
		t.Fatalf("legacy example should not appear in checkbox mode")
	}
}

func TestLegacyOmitsFailedFittingFlag(t *testing.T) {
	cfg := config.Settings{Mode: quickcode.Legacy, Visibility: quickcode.AllVisible}
	out := NewHelpOverlay().View(state.Screen{}, cfg)
	if strings.Contains(out, "f / alt+f") {
		t.Fatalf("legacy mode has no failed fitting flag")
	}
	if !strings.Contains(out, "-1 = Failed fitting") {
		t.Fatalf("legacy example missing")
	}
}
