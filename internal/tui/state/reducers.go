package state

import "fmt"

// ToggleFocus moves focus between the quick input and the comments field.
func ToggleFocus(s Screen) Screen {
	if s.Focus == QuickInput {
		s.Focus = Comments
	} else {
		s.Focus = QuickInput
	}
	return s
}

// ToggleHelp shows or hides the shortcut overlay.
func ToggleHelp(s Screen) Screen {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize records the terminal width.
func Resize(s Screen, width int) Screen {
	if width < 0 {
		width = 0
	}
	s.Width = width
	return s
}

// CycleContrast advances to the next of groups contrast groups, wrapping.
func CycleContrast(s Screen, groups int) Screen {
	if groups < 1 {
		groups = 1
	}
	s.Contrast = (s.Contrast + 1) % groups
	s.Notice = fmt.Sprintf("Contrast group %d of %d", s.Contrast+1, groups)
	return s
}

func SetNotice(s Screen, msg string) Screen {
	s.Notice = msg
	return s
}
