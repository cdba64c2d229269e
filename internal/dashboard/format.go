package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// FormatPrice formats a price right-aligned with two decimals, followed by
// the currency symbol.
func FormatPrice(p float64, currencySymbol string) string {
	return fmt.Sprintf("%7.2f %s", p, currencySymbol)
}

// FormatChange formats a percent change as "+X.XX%" or "-X.XX%".
func FormatChange(pct float64) string {
	return fmt.Sprintf("%+6.2f%%", pct)
}

// IsGain reports whether a change is shown with the gain style. Zero counts
// as a gain.
func IsGain(pct float64) bool {
	return pct >= 0
}

// fitCell pads plain text with spaces to width, or truncates if longer.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// padOrTrunc pads a possibly styled line with spaces to width, or truncates
// if longer.
func padOrTrunc(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
