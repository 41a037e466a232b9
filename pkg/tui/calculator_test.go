package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tallypad/tallypad-cli/pkg/calc"
	"github.com/tallypad/tallypad-cli/pkg/models"
)

func pressKeys(m *CalculatorModel, keys string) {
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}}
		m.Update(msg)
	}
}

func TestCalculatorKeySequences(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{"addition", "5+3=", "8"},
		{"division by zero", "9/0=", calc.ErrorDisplay},
		{"percent", "120%", "1.2"},
		{"sign toggle round trip", "7ss", "7"},
		{"clear resets", "5+3c", "0"},
		{"x multiplies", "3x4=", "12"},
		{"chained", "2+3*4=", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCalculatorModel(models.DefaultSettings())
			pressKeys(m, tt.keys)
			display := calc.FormatDisplay(m.engine.Display())
			if display != tt.expected {
				t.Errorf("after %q display = %q, want %q", tt.keys, display, tt.expected)
			}
		})
	}
}

func TestTapeRecordsCompletedCalculations(t *testing.T) {
	m := NewCalculatorModel(models.DefaultSettings())

	pressKeys(m, "5+3=")
	pressKeys(m, "9/0=")

	entries := m.TapeEntries()
	if len(entries) != 2 {
		t.Fatalf("tape has %d entries, want 2", len(entries))
	}
	if entries[0] != "5 + 3 = 8" {
		t.Errorf("first entry = %q, want %q", entries[0], "5 + 3 = 8")
	}
	if entries[1] != "9 ÷ 0 = Error" {
		t.Errorf("second entry = %q, want %q", entries[1], "9 ÷ 0 = Error")
	}
}

func TestTapeIgnoresNoopEquals(t *testing.T) {
	m := NewCalculatorModel(models.DefaultSettings())

	pressKeys(m, "5=")
	pressKeys(m, "=")

	if got := len(m.TapeEntries()); got != 0 {
		t.Errorf("tape has %d entries, want 0", got)
	}
}

func TestTapeCapped(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Tape.MaxEntries = 3
	m := NewCalculatorModel(settings)

	for i := 0; i < 5; i++ {
		pressKeys(m, "1+1=")
	}

	if got := len(m.TapeEntries()); got != 3 {
		t.Errorf("tape has %d entries, want 3", got)
	}
}

func TestTapeToggle(t *testing.T) {
	m := NewCalculatorModel(models.DefaultSettings())
	if !m.showTape {
		t.Fatal("tape should start visible with default settings")
	}

	pressKeys(m, "t")
	if m.showTape {
		t.Error("tape should be hidden after toggle")
	}
	pressKeys(m, "t")
	if !m.showTape {
		t.Error("tape should be visible after second toggle")
	}
}

func TestViewShowsFormattedDisplay(t *testing.T) {
	m := NewCalculatorModel(models.DefaultSettings())
	m.SetSize(80, 24)

	pressKeys(m, "120%")
	if view := m.View(); !strings.Contains(view, "1.2") {
		t.Error("view should contain the formatted display value")
	}

	pressKeys(m, "c9/0=")
	if view := m.View(); !strings.Contains(view, calc.ErrorDisplay) {
		t.Error("view should contain the error marker after division by zero")
	}
}
