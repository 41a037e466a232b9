package calc

import (
	"math"
	"strconv"
	"strings"
)

// ErrorDisplay is the marker shown after an undefined result (division by
// zero). The only way out of it is Clear.
const ErrorDisplay = "Error"

// Op identifies one of the four binary operations.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// ParseOp maps an operator symbol to its Op. It accepts the keypad symbols
// as well as the common ASCII spellings ("x" and "*" both multiply).
func ParseOp(s string) (Op, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return OpNone, false
}

// Symbol returns the display symbol for an operator.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

// Engine is the calculator accumulator: the display text being built, an
// optional held operand, an optional pending operator, and a flag marking
// that the next digit starts a fresh number. All transitions are total;
// numeric edge cases end up as display values, never as errors.
type Engine struct {
	display         string
	prev            *float64
	pending         Op
	awaitingOperand bool
}

// NewEngine returns an engine in its initial state (display "0").
func NewEngine() *Engine {
	return &Engine{display: "0"}
}

// Display returns the raw display string. Render it through FormatDisplay.
func (e *Engine) Display() string {
	return e.display
}

// Pending returns the unresolved operator, or OpNone.
func (e *Engine) Pending() Op {
	return e.pending
}

// Held returns the operand carried from the last operator press, if any.
func (e *Engine) Held() (float64, bool) {
	if e.prev == nil {
		return 0, false
	}
	return *e.prev, true
}

// Digit handles a digit key, d in '0'..'9'.
func (e *Engine) Digit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	switch {
	case e.awaitingOperand:
		e.display = string(d)
		e.awaitingOperand = false
	case e.display == "0":
		e.display = string(d)
	default:
		e.display += string(d)
	}
}

// Decimal handles the decimal point key. Pressing it twice without an
// intervening digit reset leaves a single point in the display.
func (e *Engine) Decimal() {
	if e.awaitingOperand {
		e.display = "0."
		e.awaitingOperand = false
		return
	}
	if !strings.Contains(e.display, ".") {
		e.display += "."
	}
}

// Operator handles an operator key. With an operand already held and an
// operator pending, it resolves them against the current display first, so
// chains evaluate left to right with no precedence. Repeated presses with no
// intervening digit re-resolve against the unchanged display each time.
func (e *Engine) Operator(op Op) {
	if op == OpNone {
		return
	}
	current := parseDisplay(e.display)
	if e.prev == nil {
		e.prev = &current
	} else if e.pending != OpNone {
		result := apply(*e.prev, current, e.pending)
		e.display = stringify(result)
		e.prev = &result
	}
	e.awaitingOperand = true
	e.pending = op
}

// Equals resolves the pending operation. A division by zero puts the error
// marker in the display; recovery is Clear. Without both a held operand and
// a pending operator this is a no-op.
func (e *Engine) Equals() {
	if e.prev == nil || e.pending == OpNone {
		return
	}
	result := apply(*e.prev, parseDisplay(e.display), e.pending)
	if math.IsNaN(result) {
		e.display = ErrorDisplay
	} else {
		e.display = stringify(result)
	}
	e.prev = nil
	e.pending = OpNone
	e.awaitingOperand = true
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear() {
	e.display = "0"
	e.prev = nil
	e.pending = OpNone
	e.awaitingOperand = false
}

// ToggleSign adds or strips a leading minus. It edits the display text
// directly so the typed formatting survives the round trip.
func (e *Engine) ToggleSign() {
	if e.display == "0" {
		return
	}
	if strings.HasPrefix(e.display, "-") {
		e.display = strings.TrimPrefix(e.display, "-")
	} else {
		e.display = "-" + e.display
	}
}

// Percent divides the displayed value by 100.
func (e *Engine) Percent() {
	e.display = stringify(parseDisplay(e.display) / 100)
}

func apply(a, b float64, op Op) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	}
	return b
}

// parseDisplay treats unparsable text (the error marker) as NaN so every
// transition stays total.
func parseDisplay(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// stringify renders the shortest decimal text for n, no trailing zeros.
func stringify(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
