// Package dashboard renders the market data screen and tracks its
// interactive state: panel geometry, the word-wrapped quote table, panel
// focus and per-panel scroll offsets.
package dashboard

import "ironledger/internal/domain"

// AppState is the read-only data rendered on every frame. Quote order is
// display order.
type AppState struct {
	Title              string
	StatusText         string
	Companies          []domain.Company
	Quotes             []domain.StockQuote
	CurrencySymbol     string
	CurrencyNamePlural string
}

// Company returns the company a quote refers to, or the zero Company if the
// reference is out of range.
func (a *AppState) Company(sq domain.StockQuote) domain.Company {
	if sq.Company < 0 || sq.Company >= len(a.Companies) {
		return domain.Company{}
	}
	return a.Companies[sq.Company]
}

// visibleQuotes returns the quotes left after skipping the first scroll.
func (a *AppState) visibleQuotes(scroll int) []domain.StockQuote {
	scroll = min(max(scroll, 0), len(a.Quotes))
	return a.Quotes[scroll:]
}

// Panel identifies one of the two content panels.
type Panel int

const (
	PanelMarketData Panel = iota
	PanelLatestNews
)

func (p Panel) String() string {
	switch p {
	case PanelMarketData:
		return "market-data"
	case PanelLatestNews:
		return "latest-news"
	default:
		return "unknown"
	}
}

// Action is a user intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionFocusMarketData
	ActionFocusLatestNews
	ActionScrollUp
	ActionScrollDown
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionFocusMarketData:
		return "focus-market-data"
	case ActionFocusLatestNews:
		return "focus-latest-news"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// UIState is the interactive state: the focused panel and one scroll offset
// per panel, in rows. Exactly one panel is focused at a time.
type UIState struct {
	Focus            Panel
	MarketDataScroll int
	LatestNewsScroll int
}

// Focused reports whether p has input focus.
func (s UIState) Focused(p Panel) bool {
	return s.Focus == p
}

// Apply returns the state after action. quoteCount bounds the market data
// scroll offset to [0, quoteCount-1], or 0 when there are no quotes. The
// news offset has no upper bound yet since the news panel has no content.
// ActionQuit and ActionNone leave the state unchanged.
func (s UIState) Apply(action Action, quoteCount int) UIState {
	switch action {
	case ActionFocusMarketData:
		s.Focus = PanelMarketData
	case ActionFocusLatestNews:
		s.Focus = PanelLatestNews
	case ActionScrollUp:
		switch s.Focus {
		case PanelMarketData:
			s.MarketDataScroll = max(s.MarketDataScroll-1, 0)
		case PanelLatestNews:
			s.LatestNewsScroll = max(s.LatestNewsScroll-1, 0)
		}
	case ActionScrollDown:
		switch s.Focus {
		case PanelMarketData:
			if quoteCount > 0 {
				s.MarketDataScroll = min(s.MarketDataScroll+1, quoteCount-1)
			}
		case PanelLatestNews:
			s.LatestNewsScroll++
		}
	}
	return s
}
