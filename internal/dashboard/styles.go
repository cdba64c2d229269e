package dashboard

import "github.com/charmbracelet/lipgloss"

// Styles.
var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	focusedBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	blurredBorderStyle = lipgloss.NewStyle()
	headerStyle        = lipgloss.NewStyle().Bold(true)
	gainStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lossStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	panelStatusStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("7"))
)

// BorderStyle returns the border style of panel p: highlighted when p has
// focus, plain otherwise.
func BorderStyle(ui UIState, p Panel) lipgloss.Style {
	if ui.Focused(p) {
		return focusedBorderStyle
	}
	return blurredBorderStyle
}
