package options

import (
	"fmt"

	"galaxy-classify/internal/quickcode"
)

// RenderLSB returns the LSB choices for mode with the current one marked.
func RenderLSB(cur quickcode.Slot, mode quickcode.Mode) []string {
	return render(quickcode.LSBOptions(mode), cur)
}

// RenderMorphology returns the morphology choices with the current one marked.
func RenderMorphology(cur quickcode.Slot) []string {
	return render(quickcode.MorphologyOptions(), cur)
}

func render(opts []quickcode.Option, cur quickcode.Slot) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		mark := "( )"
		if cur.Is(o.Value) {
			mark = "(x)"
		}
		out = append(out, fmt.Sprintf("%s %s", mark, o.Label))
	}
	return out
}
