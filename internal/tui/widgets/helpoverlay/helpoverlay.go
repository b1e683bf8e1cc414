package helpoverlay

import (
	"fmt"
	"strings"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

type section struct {
	title string
	keys  []string
}

// View returns grouped keys help. The quick input section only lists the
// flags enabled by settings.
func (HelpOverlay) View(s state.Screen, cfg config.Settings) string {
	quick := []string{
		"type: classification code (e.g. 10ar)",
		"backspace: delete last character",
	}
	for _, r := range quickcode.AllowedChars(cfg.Mode, cfg.Visibility)[4:] {
		quick = append(quick, fmt.Sprintf("%c / alt+%c: toggle %s flag", r, r, quickcode.FlagName(r)))
	}
	quick = append(quick,
		"ctrl+l / ctrl+o: cycle LSB / morphology",
		"ctrl+y: copy code",
		"enter: submit classification",
		"tab: comments field",
	)
	sections := []section{
		{"Navigation", []string{"P: previous galaxy", "N: next galaxy", "S: skip galaxy"}},
		{"Image controls", []string{"c: cycle contrast group"}},
		{"Quick input", quick},
		{"Help", []string{"?: show or hide this help", "esc / ctrl+c: quit"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s, Focus: %s)\n", cfg.Mode, s.Focus)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	b.WriteString("\nExamples:\n")
	if cfg.Mode == quickcode.Legacy {
		b.WriteString("  -1 = Failed fitting, LTG (Sp)\n")
	}
	b.WriteString("  0- = Non-LSB, Featureless\n")
	b.WriteString("  12 = LSB, ETG (Ell)\n")
	return b.String()
}
