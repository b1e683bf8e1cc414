package galaxy

import (
	"fmt"

	"galaxy-classify/internal/store"
	"galaxy-classify/internal/tui/state"
	"galaxy-classify/internal/tui/util"
	chips "galaxy-classify/internal/tui/widgets/tagchips"
)

// Title names the galaxy and its position in the catalog.
func Title(g store.Galaxy, pos, total int) string {
	return fmt.Sprintf("Galaxy %s [%d/%d]", g.ID, pos, total)
}

// Metadata renders the catalog fields on one line.
func Metadata(g store.Galaxy) string {
	nucleus := "no"
	if g.Nucleus {
		nucleus = "yes"
	}
	return fmt.Sprintf("RA %.4f  Dec %.4f  reff %.2f  q %.2f  PA %.1f  nucleus %s",
		g.RA, g.Dec, g.Reff, g.Q, g.PA, nucleus)
}

// RenderTags is a thin adapter over the TagChips widget for the form.
func RenderTags(f state.Form, noColor bool, p util.Palette) string {
	return chips.View(util.ComputeTags(f), noColor, p)
}
