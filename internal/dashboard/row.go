package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ironledger/internal/domain"
)

// Cell is one table cell. A cell with fewer lines than its row's height is
// blank below its last line.
type Cell struct {
	Lines []string
	Style lipgloss.Style
}

// Row is a formatted market data row. Height is the number of terminal lines
// the row occupies and always equals the description's wrapped line count.
type Row struct {
	Cells         []Cell
	Height        int
	PercentChange float64
}

// FormatRow builds the table row for one quote. The description is wrapped
// at descriptionWidth, clamped to at least one column.
func FormatRow(company domain.Company, quote domain.Quote, currencySymbol string, descriptionWidth int) Row {
	pct := quote.PercentChange()
	changeStyle := lossStyle
	if IsGain(pct) {
		changeStyle = gainStyle
	}

	description := WrapText(company.Description, descriptionWidth)

	return Row{
		Cells: []Cell{
			{Lines: []string{company.Ticker}},
			{Lines: []string{company.Name}},
			{Lines: []string{FormatPrice(quote.Price, currencySymbol)}},
			{Lines: []string{FormatChange(pct)}, Style: changeStyle},
			{Lines: description},
		},
		Height:        len(description),
		PercentChange: pct,
	}
}

// Lines renders the row as Height lines, each cell padded to its column
// width and separated by spacing.
func (r Row) Lines(widths []int, spacing int) []string {
	gap := strings.Repeat(" ", max(spacing, 0))
	lines := make([]string, r.Height)
	for i := range lines {
		var b strings.Builder
		for c, w := range widths {
			if c > 0 {
				b.WriteString(gap)
			}
			text := ""
			var style lipgloss.Style
			if c < len(r.Cells) {
				style = r.Cells[c].Style
				if i < len(r.Cells[c].Lines) {
					text = r.Cells[c].Lines[i]
				}
			}
			b.WriteString(style.Render(fitCell(text, w)))
		}
		lines[i] = b.String()
	}
	return lines
}

// WrapText greedily wraps s at width columns. Words are packed onto a line
// until the next word would overflow it; words are never split, so a word
// wider than width gets a line of its own. Runs of whitespace collapse.
// The result always has at least one line.
func WrapText(s string, width int) []string {
	width = max(width, 1)

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range strings.Fields(s) {
		wordW := runewidth.StringWidth(word)
		if lineW > 0 && lineW+1+wordW > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += wordW
	}
	if lineW > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
