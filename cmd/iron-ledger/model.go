package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"ironledger/internal/dashboard"
)

// Model.
type model struct {
	app  *dashboard.AppState
	ui   dashboard.UIState
	keys dashboard.KeyMap

	ready         bool
	width, height int
	logger        *slog.Logger
}

func initialModel(app *dashboard.AppState, logger *slog.Logger) model {
	return model{
		app:    app,
		ui:     dashboard.UIState{Focus: dashboard.PanelMarketData},
		keys:   dashboard.DefaultKeyMap(),
		logger: logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if action == dashboard.ActionQuit {
			m.logger.Info("quit requested", "key", msg.String())
			return m, tea.Quit
		}
		next := m.ui.Apply(action, len(m.app.Quotes))
		if next != m.ui {
			m.logger.Debug("ui state changed", "action", action,
				"focus", next.Focus, "marketScroll", next.MarketDataScroll, "newsScroll", next.LatestNewsScroll)
		}
		m.ui = next
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.logger.Debug("window resized", "width", m.width, "height", m.height)
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return dashboard.Compose(m.app, m.ui, m.width, m.height)
}
