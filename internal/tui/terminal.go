package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a command presents its results.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive
)

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

// DetectOutputMode inspects stdout and the environment.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv, forceColor, noColor, plain)
}

func detectOutputMode(isTTY bool, getenv func(string) string, forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if !isTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if getenv("TERM") == "dumb" || getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalSize returns the size of f, or the defaults when f is not a terminal.
func TerminalSize(f *os.File) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}
