package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"galaxy-classify/internal/quickcode"
)

func TestRenderLSBLegacyMarksFailedFitting(t *testing.T) {
	got := RenderLSB(quickcode.Some(-1), quickcode.Legacy)
	want := []string{"(x) Failed fitting [-1]", "( ) Non-LSB [0]", "( ) LSB [1]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("legacy options (-want +got):\n%s", diff)
	}
}

func TestRenderLSBCheckboxUnset(t *testing.T) {
	got := RenderLSB(quickcode.None, quickcode.Checkbox)
	want := []string{"( ) Non-LSB [0]", "( ) LSB [1]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("checkbox options (-want +got):\n%s", diff)
	}
}

func TestRenderMorphology(t *testing.T) {
	got := RenderMorphology(quickcode.Some(2))
	if len(got) != 4 || got[3] != "(x) ETG (Ell) [2]" {
		t.Fatalf("unexpected morphology options: %v", got)
	}
}
