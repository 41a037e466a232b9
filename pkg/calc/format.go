package calc

import (
	"math"
	"strconv"
)

// scientificThreshold is the magnitude at which the display switches to
// scientific notation.
const scientificThreshold = 1e15

// FormatDisplay renders the engine's raw display string for the screen.
// The error marker passes through untouched, anything unparsable or NaN
// renders as "0", very large magnitudes use scientific notation with six
// fractional digits, and everything else renders as the shortest decimal
// text of the parsed value.
func FormatDisplay(display string) string {
	if display == ErrorDisplay {
		return display
	}
	n, err := strconv.ParseFloat(display, 64)
	if err != nil || math.IsNaN(n) {
		return "0"
	}
	if math.Abs(n) >= scientificThreshold {
		return strconv.FormatFloat(n, 'e', 6, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
