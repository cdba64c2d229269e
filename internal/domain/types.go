// Package domain defines the core types shared across the dashboard: the
// listed companies and their simulated quotes.
package domain

// Company is the immutable identity of a listed company.
type Company struct {
	Ticker      string
	Name        string
	Description string
}

// Quote holds a company's current and previous-day price. Both are positive.
type Quote struct {
	Price          float64
	PriceYesterday float64
}

// PercentChange returns the change from yesterday's price in percent.
// PriceYesterday is always positive, so the result is always defined.
func (q Quote) PercentChange() float64 {
	return (q.Price - q.PriceYesterday) / q.PriceYesterday * 100
}

// StockQuote pairs a Quote with its Company. Company is an index into the
// company list the quote was generated from; that list outlives every
// StockQuote referencing it.
type StockQuote struct {
	Company int
	Quote   Quote
}
