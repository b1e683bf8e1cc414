package util

import (
	"testing"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/tui/state"
)

var settings = config.Settings{Mode: quickcode.Checkbox, Visibility: quickcode.AllVisible}

func kinds(tags []state.Tag) []state.TagKind {
	out := make([]state.TagKind, len(tags))
	for i, t := range tags {
		out[i] = t.Kind
	}
	return out
}

func equal(a, b []state.TagKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEmptyFormHasNoTags(t *testing.T) {
	f := state.Reset(state.NewForm(settings), "g1")
	if tags := ComputeTags(f); len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", kinds(tags))
	}
}

func TestStableOrder(t *testing.T) {
	f := state.TypeCode(state.Reset(state.NewForm(settings), "g1"), "10fnar")
	got := kinds(ComputeTags(f))
	want := []state.TagKind{state.AWESOME, state.REDSHIFT, state.NUCLEUS, state.FAILED, state.EDITED}
	if !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSavedVersusEdited(t *testing.T) {
	f := state.Reset(state.NewForm(settings), "g1")
	f = state.ApplySaved(f, state.Record{
		ID: "c1", GalaxyID: "g1",
		Flags: quickcode.Flags{LSB: quickcode.Some(0), Morphology: quickcode.Some(1)},
	})
	if got := kinds(ComputeTags(f)); !equal(got, []state.TagKind{state.SAVED}) {
		t.Fatalf("expected SAVED only, got %v", got)
	}

	f = state.TypeCode(f, "01r")
	if got := kinds(ComputeTags(f)); !equal(got, []state.TagKind{state.REDSHIFT, state.EDITED}) {
		t.Fatalf("expected REDSHIFT, EDITED, got %v", got)
	}
}

func TestHiddenFlagsProduceNoChips(t *testing.T) {
	hidden := config.Settings{Mode: quickcode.Legacy}
	f := state.TypeCode(state.Reset(state.NewForm(hidden), "g1"), "12arnf")
	if got := kinds(ComputeTags(f)); !equal(got, []state.TagKind{state.EDITED}) {
		t.Fatalf("expected only EDITED, got %v", got)
	}
}
