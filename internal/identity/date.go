package identity

import (
	"fmt"
	"time"
)

// Date is a civil date with no time-of-day component. The graph store and
// the hasher treat dates and timestamps differently, so date-only values
// must stay date-only instead of becoming a midnight time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its civil date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// String renders the date in ISO form, e.g. "1897-04-23".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as the ordered list [year, month, day],
// the form the graph store expects for date-only properties.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d,%d]", d.Year, int(d.Month), d.Day)), nil
}
