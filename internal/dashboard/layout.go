package dashboard

// Rect is a rectangular area of terminal cells. X and Y are absolute.
type Rect struct {
	X, Y int
	W, H int
}

// Sub returns a nested rect with coordinates relative to r, clipped to r.
func (r Rect) Sub(x, y, w, h int) Rect {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	x = min(x, max(r.W, 0))
	y = min(y, max(r.H, 0))
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Rect{X: r.X + x, Y: r.Y + y, W: max(w, 0), H: max(h, 0)}
}

// Inset returns r shrunk by n cells on all sides.
func (r Rect) Inset(n int) Rect {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// splitTop splits r into a fixed-height top and the remainder below it.
func splitTop(r Rect, topH int) (top, bottom Rect) {
	topH = min(max(topH, 0), r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}

// splitBottom splits r into the remainder and a fixed-height bottom.
func splitBottom(r Rect, bottomH int) (top, bottom Rect) {
	bottomH = min(max(bottomH, 0), r.H)
	return r.Sub(0, 0, r.W, r.H-bottomH), r.Sub(0, r.H-bottomH, r.W, bottomH)
}

// splitHalves splits r into two side-by-side halves. The left half gets the
// extra column on odd widths.
func splitHalves(r Rect) (left, right Rect) {
	leftW := (r.W + 1) / 2
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}

// Market data column widths.
const (
	TickerWidth         = 8
	NameWidth           = 30
	PriceWidth          = 10
	ChangeWidth         = 7
	ColumnSpacing       = 1
	MinDescriptionWidth = 24
)

// ColumnWidths holds the widths of the market data table columns.
type ColumnWidths struct {
	Ticker      int
	Name        int
	Price       int
	Change      int
	Description int
	Spacing     int
}

// PlanColumns fixes the ticker, name, price and change columns and gives the
// description whatever is left of tableWidth, but never less than
// MinDescriptionWidth.
func PlanColumns(tableWidth int) ColumnWidths {
	fixed := TickerWidth + NameWidth + PriceWidth + ChangeWidth
	return ColumnWidths{
		Ticker:      TickerWidth,
		Name:        NameWidth,
		Price:       PriceWidth,
		Change:      ChangeWidth,
		Description: max(tableWidth-fixed, MinDescriptionWidth),
		Spacing:     ColumnSpacing,
	}
}

// Widths returns the column widths in display order.
func (c ColumnWidths) Widths() []int {
	return []int{c.Ticker, c.Name, c.Price, c.Change, c.Description}
}

// SpacingOverhead is the total width taken by the gaps between columns.
func (c ColumnWidths) SpacingOverhead() int {
	return (len(c.Widths()) - 1) * c.Spacing
}

// DescriptionWrapWidth is the width description text is wrapped at: the
// description column minus the spacing overhead the fill area does not
// account for.
func (c ColumnWidths) DescriptionWrapWidth() int {
	return max(c.Description-c.SpacingOverhead(), 1)
}

// Layout is the geometry of one frame. It is derived from the terminal size
// on every render and never stored.
type Layout struct {
	Title            Rect
	Status           Rect
	MarketData       Rect
	LatestNews       Rect
	MarketDataTable  Rect
	MarketDataStatus Rect
	Columns          ColumnWidths
}

// Plan computes the frame layout for a terminal area: a one-row title, a
// one-row status bar, and two equal panels between them. Inside the market
// data panel's border the table takes all rows but the last, which holds
// the panel status line. Any area, including an empty one, yields a layout.
func Plan(area Rect) Layout {
	title, rest := splitTop(area, 1)
	body, status := splitBottom(rest, 1)
	market, news := splitHalves(body)
	table, marketStatus := splitBottom(market.Inset(1), 1)

	return Layout{
		Title:            title,
		Status:           status,
		MarketData:       market,
		LatestNews:       news,
		MarketDataTable:  table,
		MarketDataStatus: marketStatus,
		Columns:          PlanColumns(table.W),
	}
}
