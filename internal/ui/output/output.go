// Package output creates termenv outputs with the color profile compass renders with.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for output. NO_COLOR forces plain text.
// Interactive output uses what the terminal reports; non-interactive output such as
// CI logs and pipes uses basic ANSI.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if interactive {
		return termenv.EnvColorProfile()
	}
	return termenv.ANSI
}

// New creates a termenv.Output on w, or stderr when w is nil.
func New(w io.Writer, interactive bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(interactive)),
		termenv.WithTTY(true),
	)
}
