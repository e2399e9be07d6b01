package cli

import (
	"os"

	"github.com/amp-labs/amp-sortable/envutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	DefaultTerminalWidth = 80

	borderWidth = 2
)

// BannerAutoWidth is Banner sized to the terminal on stdout.
func BannerAutoWidth(title string) string {
	return Banner(title, TerminalWidth())
}

// Banner centers title in a double-lined box width columns wide. Setting
// SORTTABLE_NO_BANNER=true prints the bare title instead.
func Banner(title string, width int) string {
	if suppressBanner() || width <= borderWidth {
		return title + "\n"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Width(width-borderWidth).
		Align(lipgloss.Center).
		Render(title) + "\n"
}

func suppressBanner() bool {
	return envutil.Bool("SORTTABLE_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// TerminalWidth returns the width of stdout, or DefaultTerminalWidth when it
// is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return DefaultTerminalWidth
	}

	return w
}
