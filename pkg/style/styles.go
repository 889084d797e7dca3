package style

import (
	"os"

	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Adaptive colors
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFD7"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// ActionStyle returns the pterm style for a reconciliation action
func ActionStyle(a reconcile.Action) *pterm.Style {
	switch a {
	case reconcile.ActionAdded:
		return pterm.NewStyle(pterm.FgGreen)
	case reconcile.ActionUpdated:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DisableColor turns off pterm and lipgloss styling
func DisableColor() {
	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
}
