package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how listings are presented.
type OutputMode int

const (
	// OutputModePlain writes an unstyled text table.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a lipgloss-styled, non-interactive view.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// isTerminal is swapped in tests.
//
//nolint:gochecknoglobals // Test seam for terminal detection.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DetectOutputMode picks the output mode for stdout.
//
// plain or NO_COLOR force plain output. A terminal gets the interactive view
// unless noInteractive is set, in which case it gets styled output. When
// stdout is not a terminal the result is plain unless forceColor is set.
func DetectOutputMode(forceColor, noInteractive, plain bool) OutputMode {
	if plain || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if isTerminal(os.Stdout) {
		if noInteractive {
			return OutputModeStyled
		}
		return OutputModeInteractive
	}
	if forceColor {
		return OutputModeStyled
	}
	return OutputModePlain
}
