package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY reports whether f is attached to a terminal (including Cygwin
// pseudo terminals).
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorProfile returns the color capability of the current terminal as
// advertised by the environment. Non-TTY output degrades to no color so
// piped renders stay clean.
func ColorProfile() termenv.Profile {
	if !IsTTY(os.Stdout) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
