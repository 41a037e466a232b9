package commands

import (
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{"single number", []string{"5"}, "5"},
		{"addition", []string{"5", "+", "3"}, "8"},
		{"left to right no precedence", []string{"10", "-", "2", "x", "3"}, "24"},
		{"division", []string{"1", "/", "4"}, "0.25"},
		{"division by zero", []string{"9", "/", "0"}, "Error"},
		{"keypad symbols", []string{"6", "×", "7"}, "42"},
		{"negative operand", []string{"-5", "+", "3"}, "-2"},
		{"decimals", []string{"1.5", "+", "2.25"}, "3.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.tokens)
			if err != nil {
				t.Fatalf("Evaluate(%v) error = %v", tt.tokens, err)
			}
			if result != tt.expected {
				t.Errorf("Evaluate(%v) = %q, want %q", tt.tokens, result, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"trailing operator", []string{"5", "+"}},
		{"operator in number position", []string{"+", "5"}},
		{"garbage number", []string{"abc"}},
		{"double decimal point", []string{"1.2.3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.tokens); err == nil {
				t.Errorf("Evaluate(%v) expected an error", tt.tokens)
			}
		})
	}
}
