// Package market provides the simulated quote source for the dashboard. It
// produces one random quote per company without any external data feed.
package market

import (
	"math/rand/v2"

	"ironledger/internal/domain"
)

// Simulator generates random quotes within configured price and daily change
// ranges. Ranges are inclusive.
type Simulator struct {
	PriceMin     float64
	PriceMax     float64
	ChangePctMin float64
	ChangePctMax float64
}

// NewSimulator creates a Simulator with the given ranges.
func NewSimulator(priceMin, priceMax, changePctMin, changePctMax float64) *Simulator {
	return &Simulator{
		PriceMin:     priceMin,
		PriceMax:     priceMax,
		ChangePctMin: changePctMin,
		ChangePctMax: changePctMax,
	}
}

// DefaultSimulator uses prices in [500, 3000] and daily moves in [-10%, 10%].
func DefaultSimulator() *Simulator {
	return NewSimulator(500.0, 3000.0, -10.0, 10.0)
}

// Name returns "simulator".
func (s *Simulator) Name() string {
	return "simulator"
}

// Quote draws a single random quote. Yesterday's price is derived from the
// current price and a random percentage move.
func (s *Simulator) Quote(rng *rand.Rand) domain.Quote {
	price := uniform(rng, s.PriceMin, s.PriceMax)
	pct := uniform(rng, s.ChangePctMin, s.ChangePctMax)
	return domain.Quote{
		Price:          price,
		PriceYesterday: (1 + pct/100) * price,
	}
}

// GenQuotes returns one quote per company, in company order. Each quote
// refers to its company by index into companies.
func (s *Simulator) GenQuotes(rng *rand.Rand, companies []domain.Company) []domain.StockQuote {
	quotes := make([]domain.StockQuote, 0, len(companies))
	for i := range companies {
		quotes = append(quotes, domain.StockQuote{
			Company: i,
			Quote:   s.Quote(rng),
		})
	}
	return quotes
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
