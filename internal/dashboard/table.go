package dashboard

import "strings"

var tableHeader = []string{"Ticker", "Name", "Price", "Change%", "Description"}

// headerLines returns the bold header row followed by one blank separator.
func headerLines(cols ColumnWidths, width int) []string {
	cells := make([]string, len(tableHeader))
	for i, w := range cols.Widths() {
		cells[i] = fitCell(tableHeader[i], w)
	}
	header := strings.Join(cells, strings.Repeat(" ", cols.Spacing))
	return []string{
		headerStyle.Render(padOrTrunc(header, width)),
		strings.Repeat(" ", max(width, 0)),
	}
}

// RenderTable renders the market data table into viewport. The first scroll
// quotes are skipped; every remaining quote is laid out at its own height
// until the viewport runs out of lines, and the last row may be cut short.
// The header is never scrolled. The result has exactly viewport.H lines of
// viewport.W cells, along with the scrollbar state for this frame.
func RenderTable(app *AppState, scroll int, cols ColumnWidths, viewport Rect) ([]string, ScrollbarState) {
	scrollbar := NewScrollbarState(len(app.Quotes), scroll)
	if viewport.Empty() {
		return make([]string, max(viewport.H, 0)), scrollbar
	}

	lines := make([]string, 0, viewport.H)
	for _, l := range headerLines(cols, viewport.W) {
		if len(lines) == viewport.H {
			return lines, scrollbar
		}
		lines = append(lines, l)
	}

	widths := cols.Widths()
	wrapWidth := cols.DescriptionWrapWidth()
	for _, sq := range app.visibleQuotes(scroll) {
		row := FormatRow(app.Company(sq), sq.Quote, app.CurrencySymbol, wrapWidth)
		for _, l := range row.Lines(widths, cols.Spacing) {
			if len(lines) == viewport.H {
				return lines, scrollbar
			}
			lines = append(lines, padOrTrunc(l, viewport.W))
		}
	}

	blank := strings.Repeat(" ", viewport.W)
	for len(lines) < viewport.H {
		lines = append(lines, blank)
	}
	return lines, scrollbar
}
