package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tallypad/tallypad-cli/internal/cli"
	"github.com/tallypad/tallypad-cli/pkg/calc"
)

var (
	evalCopy bool
)

// NewEvalCommand creates the eval command
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <number> [op number]...",
		Short: "Evaluate a flat expression and print the result",
		Long: `Evaluate numbers and operators left to right, exactly as if the
keys were pressed on the Tallypad keypad. There is no operator precedence:
10 - 2 x 3 evaluates to 24.

Operators: + - x / (also * and the keypad symbols × ÷ −).

Examples:
  # Add two numbers
  tallypad eval 5 + 3

  # Chained, left to right
  tallypad eval 10 - 2 x 3

  # Copy the result to the clipboard as well
  tallypad eval 1 / 3 --copy`,
		Args:    cobra.MinimumNArgs(1),
		Aliases: []string{"e", "calc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := Evaluate(args)
			if err != nil {
				return err
			}

			ctx := cli.NewCommandContext()
			ctx.Printf("%s\n", result)

			if evalCopy {
				if err := clipboard.WriteAll(result); err != nil {
					return fmt.Errorf("failed to copy result to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&evalCopy, "copy", "c", false, "also copy the result to the clipboard")
	return cmd
}

// Evaluate feeds the tokens through the calculator engine as key presses:
// numbers character by character, operators in between, then equals. Tokens
// must alternate number, operator, number, ...
func Evaluate(tokens []string) (string, error) {
	engine := calc.NewEngine()

	for i, token := range tokens {
		if i%2 == 0 {
			if err := pressNumber(engine, token); err != nil {
				return "", err
			}
			continue
		}
		op, ok := calc.ParseOp(token)
		if !ok {
			return "", fmt.Errorf("expected an operator, got %q", token)
		}
		engine.Operator(op)
	}

	if len(tokens)%2 == 0 {
		return "", fmt.Errorf("expression ends with an operator")
	}

	engine.Equals()
	return calc.FormatDisplay(engine.Display()), nil
}

func pressNumber(engine *calc.Engine, token string) error {
	digits := token
	negative := false
	if len(digits) > 1 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	seenPoint := false
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
			engine.Digit(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			engine.Decimal()
		default:
			return fmt.Errorf("invalid number %q", token)
		}
	}
	if digits == "" {
		return fmt.Errorf("invalid number %q", token)
	}

	if negative {
		engine.ToggleSign()
	}
	return nil
}
