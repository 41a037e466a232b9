package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tallypad/tallypad-cli/pkg/models"
)

type sessionState int

const (
	calculatorView sessionState = iota
)

type App struct {
	state      sessionState
	calculator *CalculatorModel
	width      int
	height     int
	statusMsg  string
}

func NewApp(settings *models.Settings) *App {
	return &App{
		state:      calculatorView,
		calculator: NewCalculatorModel(settings),
	}
}

func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.calculator != nil {
			a.calculator.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// Any key press clears a stale status message.
		a.statusMsg = ""

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case calculatorView:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		if c, ok := m.(*CalculatorModel); ok {
			a.calculator = c
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case calculatorView:
		content = a.calculator.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// StatusMsg carries a transient message for the status bar.
type StatusMsg string
