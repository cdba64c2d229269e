package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	marketDataTitle = "Realtime market data"
	latestNewsTitle = "Latest news"
)

// Compose renders a full frame of width x height cells for the given state.
// It is a pure function: the layout and scrollbar are derived here on every
// call. The result has exactly height lines of width cells, or is empty when
// either dimension is zero.
func Compose(app *AppState, ui UIState, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	l := Plan(Rect{W: width, H: height})

	lines := make([]string, 0, height)
	lines = append(lines, titleLines(app.Title, l.Title)...)

	market := marketDataPanel(app, ui, l)
	news := latestNewsPanel(ui, l)
	for i := range l.MarketData.H {
		lines = append(lines, market[i]+news[i])
	}

	lines = append(lines, statusLines(app.StatusText, l.Status)...)
	return strings.Join(lines, "\n")
}

func titleLines(title string, r Rect) []string {
	if r.H <= 0 {
		return nil
	}
	line := lipgloss.PlaceHorizontal(r.W, lipgloss.Center, titleStyle.Render(title))
	return []string{padOrTrunc(line, r.W)}
}

// statusLines renders the status bar as a top border titled with text, with
// the key help right-aligned when it fits.
func statusLines(text string, r Rect) []string {
	if r.H <= 0 {
		return nil
	}
	help := keyHelp()
	used := ansi.StringWidth(text)
	fill := r.W - used
	if helpW := ansi.StringWidth(help); fill >= helpW+2 {
		fill -= helpW + 1
	} else {
		help = ""
	}
	line := text + strings.Repeat(lipgloss.NormalBorder().Top, max(fill, 0))
	if help != "" {
		line += " " + help
	}
	return []string{padOrTrunc(line, r.W)}
}

func marketDataPanel(app *AppState, ui UIState, l Layout) []string {
	style := BorderStyle(ui, PanelMarketData)

	content, scrollbar := RenderTable(app, ui.MarketDataScroll, l.Columns, l.MarketDataTable)
	if l.MarketDataStatus.H > 0 {
		status := panelStatusStyle.Render(fmt.Sprintf("Prices in %s", app.CurrencyNamePlural))
		content = append(content, padOrTrunc(status, l.MarketDataStatus.W))
	}

	var edge []string
	for _, g := range scrollbar.Glyphs(l.MarketData.H - 2) {
		edge = append(edge, style.Render(g))
	}
	return renderBlock(marketDataTitle, l.MarketData.W, l.MarketData.H, style, content, edge)
}

func latestNewsPanel(ui UIState, l Layout) []string {
	return renderBlock(latestNewsTitle, l.LatestNews.W, l.LatestNews.H, BorderStyle(ui, PanelLatestNews), nil, nil)
}

// renderBlock draws a bordered box of w x h cells titled on its top border.
// content fills the rows inside the border. rightEdge, when set, replaces
// the right border on those rows.
func renderBlock(title string, w, h int, style lipgloss.Style, content, rightEdge []string) []string {
	if h <= 0 {
		return nil
	}
	lines := make([]string, 0, h)
	if w <= 0 {
		for range h {
			lines = append(lines, "")
		}
		return lines
	}

	b := lipgloss.NormalBorder()
	lines = append(lines, borderLine(b.TopLeft, b.Top, b.TopRight, title, w, style))
	for i := range max(h-2, 0) {
		if w == 1 {
			lines = append(lines, style.Render(b.Left))
			continue
		}
		inner := ""
		if i < len(content) {
			inner = content[i]
		}
		right := style.Render(b.Right)
		if i < len(rightEdge) {
			right = rightEdge[i]
		}
		lines = append(lines, style.Render(b.Left)+padOrTrunc(inner, w-2)+right)
	}
	if h >= 2 {
		lines = append(lines, borderLine(b.BottomLeft, b.Bottom, b.BottomRight, "", w, style))
	}
	return lines
}

func borderLine(left, mid, right, title string, w int, style lipgloss.Style) string {
	if w == 1 {
		return style.Render(left)
	}
	inner := w - 2
	title = ansi.Truncate(title, inner, "")
	fill := inner - ansi.StringWidth(title)
	return style.Render(left) + title + style.Render(strings.Repeat(mid, fill)) + style.Render(right)
}
