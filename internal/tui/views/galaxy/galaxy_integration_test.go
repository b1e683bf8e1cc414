package galaxy

import (
	"strings"
	"testing"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/store"
	"galaxy-classify/internal/tui/state"
	"galaxy-classify/internal/tui/util"
)

func TestRenderTagsIntegration(t *testing.T) {
	f := state.NewForm(config.Settings{Mode: quickcode.Checkbox, Visibility: quickcode.AllVisible})
	f = state.TypeCode(state.Reset(f, "g1"), "1-arf")
	out := RenderTags(f, true, util.DefaultPalette())

	wants := []string{"[Awesome]", "[Valid redshift]", "[Failed fitting]", "[Edited]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}

func TestTitleAndMetadata(t *testing.T) {
	g := store.Galaxy{ID: "UDG-4", RA: 150.1234, Dec: -2.5, Reff: 3.25, Q: 0.8, PA: 12, Nucleus: true}
	if got := Title(g, 2, 10); got != "Galaxy UDG-4 [2/10]" {
		t.Fatalf("title = %q", got)
	}
	want := "RA 150.1234  Dec -2.5000  reff 3.25  q 0.80  PA 12.0  nucleus yes"
	if got := Metadata(g); got != want {
		t.Fatalf("metadata = %q, want %q", got, want)
	}
}
