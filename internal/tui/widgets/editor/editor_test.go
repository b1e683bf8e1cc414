package editor

import (
	"strings"
	"testing"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/tui/state"
)

func TestPlaceholderWhenEmpty(t *testing.T) {
	f := state.NewForm(config.Settings{Mode: quickcode.Legacy, Visibility: quickcode.AllVisible})
	out := NewEditor().View(state.Screen{}, f)
	if !strings.Contains(out, "> Example: -1 or 0- or 1-") {
		t.Fatalf("placeholder missing:\n%s", out)
	}
	if !strings.Contains(out, "[LSB: -/0/1]") {
		t.Fatalf("legacy format hint missing:\n%s", out)
	}
}

func TestCursorOnlyWhenFocused(t *testing.T) {
	f := state.TypeCode(state.NewForm(config.Settings{Visibility: quickcode.AllVisible}), "12a")
	if out := NewEditor().View(state.Screen{}, f); !strings.Contains(out, "> 12a_") || !strings.Contains(out, "[active]") {
		t.Fatalf("focused field should show cursor:\n%s", out)
	}
	out := NewEditor().View(state.Screen{Focus: state.Comments}, f)
	if strings.Contains(out, "12a_") || strings.Contains(out, "[active]") {
		t.Fatalf("unfocused field should not show cursor:\n%s", out)
	}
}
