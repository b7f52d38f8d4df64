package summary

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Summary is a single linguistic statement about a series.
//
// Fields:
//   - Text: The statement
//   - Validity: Degree in [0, 1] to which the statement holds for the series
type Summary struct {
	Text     string  `json:"text"`
	Validity float64 `json:"validity"`
}

// Group is a titled set of summaries with an optional highlight paragraph.
type Group struct {
	Title     string    `json:"title"`
	Summaries []Summary `json:"summaries"`
	Paragraph *Summary  `json:"paragraph,omitempty"`
}

// Formatter renders x and y values for human readers.
type Formatter[X any] interface {
	FormatX(x X) string
	FormatY(y float64) string
}

// FormatterFuncs adapts a pair of functions to a Formatter.
// A nil X falls back to fmt.Sprint, a nil Y to FormatNumber.
type FormatterFuncs[X any] struct {
	X func(X) string
	Y func(float64) string
}

var _ Formatter[time.Time] = FormatterFuncs[time.Time]{}

// FormatX implements Formatter.
func (f FormatterFuncs[X]) FormatX(x X) string {
	if f.X == nil {
		return fmt.Sprint(x)
	}

	return f.X(x)
}

// FormatY implements Formatter.
func (f FormatterFuncs[X]) FormatY(y float64) string {
	if f.Y == nil {
		return FormatNumber(y)
	}

	return f.Y(y)
}

// DateLayout is the time layout used by DefaultTimeFormatter.
const DateLayout = "Jan 2, 2006"

// DefaultTimeFormatter formats timestamps as dates and values with FormatNumber.
func DefaultTimeFormatter() Formatter[time.Time] {
	return FormatterFuncs[time.Time]{
		X: func(t time.Time) string { return t.Format(DateLayout) },
		Y: FormatNumber,
	}
}

// FormatNumber renders v rounded to two decimals, without trailing zeros.
func FormatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch abs := max(n, -n); {
	case abs%100 >= 11 && abs%100 <= 13:
	case abs%10 == 1:
		suffix = "st"
	case abs%10 == 2:
		suffix = "nd"
	case abs%10 == 3:
		suffix = "rd"
	}

	return strconv.Itoa(n) + suffix
}
