package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled resolves a color mode (auto, always or never) for out
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil {
		return false
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

// Configure sets the lipgloss color profile for the process
func Configure(mode string, out *os.File) {
	switch {
	case !ColorEnabled(mode, out):
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}
