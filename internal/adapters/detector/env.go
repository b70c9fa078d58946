// Package detector chooses between the interactive and the linear renderer.
package detector

import (
	"os"

	"go.trai.ch/compass/internal/core/domain"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for a search.
type OutputMode int

const (
	// ModeTUI renders with the interactive terminal interface.
	ModeTUI OutputMode = iota
	// ModeLinear prints plain sections, for pipes and CI.
	ModeLinear
)

func (m OutputMode) String() string {
	if m == ModeTUI {
		return domain.OutputTUI
	}
	return domain.OutputLinear
}

// DetectEnvironment returns the recommended output mode for the current process.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect picks linear output when stdout is not a terminal, when running under CI
// or when the terminal is dumb.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	if !isTTY || ci == "true" || ci == "1" || getenv("TERM") == "dumb" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the configured or flagged output to auto-detection.
// setting is one of "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, setting string) OutputMode {
	switch setting {
	case domain.OutputTUI:
		return ModeTUI
	case domain.OutputLinear, "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
