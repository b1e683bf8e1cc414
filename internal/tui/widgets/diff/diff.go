package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"galaxy-classify/internal/tui/util"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View compares the saved code with the pending one. Changed characters are
// underlined; with color disabled they are bracketed instead.
func (DiffView) View(saved, pending string, noColor bool) string {
	noColor = util.NoColor(noColor)
	if saved == "" {
		return render(faint, "Not classified yet", noColor) + "\n"
	}
	if saved == pending {
		return render(faint, "Saved: "+saved+" (no changes)", noColor) + "\n"
	}

	d := dmp.New()
	diffs := d.DiffMain(saved, pending, false)
	d.DiffCleanupSemantic(diffs)

	var before, after strings.Builder
	before.WriteString(render(delLine, "- ", noColor))
	after.WriteString(render(addLine, "+ ", noColor))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			before.WriteString(mark(delChar, df.Text, noColor))
		case dmp.DiffInsert:
			after.WriteString(mark(addChar, df.Text, noColor))
		case dmp.DiffEqual:
			before.WriteString(render(delLine, df.Text, noColor))
			after.WriteString(render(addLine, df.Text, noColor))
		}
	}
	if pending == "" {
		after.WriteString(render(faint, "(empty)", noColor))
	}
	return before.String() + "\n" + after.String() + "\n"
}

func render(st lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

func mark(st lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return "[" + s + "]"
	}
	return st.Render(s)
}
