package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tallypad/tallypad-cli/pkg/calc"
)

const (
	displayWidth = 25
	tapeWidth    = 30
	keypadHeight = 9
)

func (m *CalculatorModel) View() string {
	sections := []string{
		renderHeader(m.width),
		m.renderDisplay(),
		m.renderKeypad(),
		m.renderFooter(),
	}
	left := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if !m.showTape {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderTape())
}

// renderDisplay shows the formatted value right-aligned, with the armed
// operator as a small indicator on the left edge.
func (m *CalculatorModel) renderDisplay() string {
	value := calc.FormatDisplay(m.engine.Display())

	var rendered string
	if value == calc.ErrorDisplay {
		rendered = ErrorDisplayStyle.Render(value)
	} else {
		rendered = DisplayValueStyle(m.settings.UI.AccentColor).Render(value)
	}

	indicator := " "
	if op := m.engine.Pending(); op != calc.OpNone {
		indicator = op.Symbol()
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		PendingOpStyle.Render(indicator),
		lipgloss.NewStyle().
			Width(displayWidth-2-lipgloss.Width(indicator)).
			Align(lipgloss.Right).
			Render(rendered),
	)
	return DisplayStyle.Width(displayWidth).Render(line)
}

// button is one keypad cell.
type button struct {
	label string
	op    calc.Op // set for operator buttons, used for the armed highlight
}

var keypadRows = [][]button{
	{{label: "C"}, {label: "±"}, {label: "%"}, {label: "÷", op: calc.OpDivide}},
	{{label: "7"}, {label: "8"}, {label: "9"}, {label: "×", op: calc.OpMultiply}},
	{{label: "4"}, {label: "5"}, {label: "6"}, {label: "−", op: calc.OpSubtract}},
	{{label: "1"}, {label: "2"}, {label: "3"}, {label: "+", op: calc.OpAdd}},
	{{label: "0"}, {label: " "}, {label: "."}, {label: "=", op: calc.OpNone}},
}

func (m *CalculatorModel) renderKeypad() string {
	armed := m.engine.Pending()
	accent := AccentStyle(m.settings.UI.AccentColor)

	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			style := ButtonStyle
			switch {
			case b.op != calc.OpNone && b.op == armed:
				style = accent
			case b.op != calc.OpNone || b.label == "=":
				style = OperatorButtonStyle
			}
			cells = append(cells, style.Render(" "+b.label+" "))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *CalculatorModel) renderTape() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Bold(true).
		Render("TAPE")

	body := m.tapeView.View()
	if len(m.tape) == 0 {
		body = TapeEntryStyle.Render("(no calculations yet)")
	}

	return TapeBorderStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body),
	)
}

func (m *CalculatorModel) renderFooter() string {
	help := "0-9 digits • . decimal • + - * / operators • enter/= equals • " +
		"c clear • s toggle sign • % percent • y copy result • t tape • q quit"

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().
		Padding(1, 1, 0, 1).
		Render(FooterStyle.Render(wordwrap.String(help, width)))
}
