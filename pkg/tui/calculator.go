package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tallypad/tallypad-cli/pkg/calc"
	"github.com/tallypad/tallypad-cli/pkg/models"
)

// CalculatorModel is the single calculator screen: a keypad driving the
// accumulator engine, plus an optional session tape of completed
// calculations. The tape lives in memory only.
type CalculatorModel struct {
	engine   *calc.Engine
	settings *models.Settings
	tape     []string
	tapeView viewport.Model
	showTape bool
	width    int
	height   int
}

// NewCalculatorModel creates the calculator screen
func NewCalculatorModel(settings *models.Settings) *CalculatorModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &CalculatorModel{
		engine:   calc.NewEngine(),
		settings: settings,
		tapeView: viewport.New(0, 0),
		showTape: settings.UI.ShowTape,
	}
}

func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the layout dimensions
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.tapeView.Width = tapeWidth
	m.tapeView.Height = keypadHeight
}

func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q":
		return m, tea.Quit

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.engine.Digit(rune(key[0]))

	case ".":
		m.engine.Decimal()

	case "+", "-", "*", "x", "/":
		op, _ := calc.ParseOp(key)
		m.engine.Operator(op)

	case "=", "enter":
		m.recordAndResolve()

	case "c", "esc":
		m.engine.Clear()

	case "s":
		m.engine.ToggleSign()

	case "%":
		m.engine.Percent()

	case "t":
		m.showTape = !m.showTape

	case "y":
		result := calc.FormatDisplay(m.engine.Display())
		if err := clipboard.WriteAll(result); err != nil {
			return m, func() tea.Msg {
				return StatusMsg(fmt.Sprintf("✗ Clipboard copy failed: %v", err))
			}
		}
		return m, func() tea.Msg {
			return StatusMsg("✓ Copied " + result + " to clipboard")
		}
	}

	return m, nil
}

// recordAndResolve presses equals and, when the press actually resolved a
// pending operation, appends an "a op b = r" line to the tape.
func (m *CalculatorModel) recordAndResolve() {
	held, ok := m.engine.Held()
	pending := m.engine.Pending()
	operand := calc.FormatDisplay(m.engine.Display())

	m.engine.Equals()

	if !ok || pending == calc.OpNone {
		return
	}

	entry := fmt.Sprintf("%s %s %s = %s",
		strconv.FormatFloat(held, 'f', -1, 64),
		pending.Symbol(),
		operand,
		calc.FormatDisplay(m.engine.Display()))
	m.appendTapeEntry(entry)
}

func (m *CalculatorModel) appendTapeEntry(entry string) {
	m.tape = append(m.tape, entry)
	if max := m.settings.Tape.MaxEntries; max > 0 && len(m.tape) > max {
		m.tape = m.tape[len(m.tape)-max:]
	}
	m.tapeView.SetContent(strings.Join(m.tape, "\n"))
	m.tapeView.GotoBottom()
}

// TapeEntries returns the recorded tape lines, oldest first.
func (m *CalculatorModel) TapeEntries() []string {
	return m.tape
}
