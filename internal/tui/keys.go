package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the classification screen bindings. Plain letters that are
// part of the quick code alphabet are never bound here.
type keyMap struct {
	Submit      key.Binding
	Previous    key.Binding
	Next        key.Binding
	Skip        key.Binding
	Contrast    key.Binding
	Focus       key.Binding
	CycleLSB    key.Binding
	CycleMorph  key.Binding
	Awesome     key.Binding
	Redshift    key.Binding
	Nucleus     key.Binding
	Failed      key.Binding
	Copy        key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
	DeleteInput key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Previous: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "previous galaxy"),
		),
		Next: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "next galaxy"),
		),
		Skip: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "skip galaxy"),
		),
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle contrast"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "comments"),
		),
		CycleLSB: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "cycle LSB class"),
		),
		CycleMorph: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "cycle morphology"),
		),
		Awesome: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("M-a", "toggle awesome"),
		),
		Redshift: key.NewBinding(
			key.WithKeys("alt+r"),
			key.WithHelp("M-r", "toggle valid redshift"),
		),
		Nucleus: key.NewBinding(
			key.WithKeys("alt+n"),
			key.WithHelp("M-n", "toggle visible nucleus"),
		),
		Failed: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("M-f", "toggle failed fitting"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy code"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		DeleteInput: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete character"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Previous, k.Next, k.Skip, k.Focus, k.Help}
}
