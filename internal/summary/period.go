package summary

import (
	"time"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Day is the window covering only the calendar date of t.
func Day(t time.Time) Window {
	return NewWindow(t, t)
}

// Week is the Sunday to Saturday window containing t.
func Week(t time.Time) Window {
	d := ledger.Day(t)
	start := d.AddDate(0, 0, -int(d.Weekday()))

	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// Month is the calendar month containing t.
func Month(t time.Time) Window {
	start := ledger.MonthStart(t)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// Shift moves w by n periods of its own length in days. Weeks shift by weeks, and a
// month window shifts to the neighbouring calendar month.
func (w Window) Shift(n int) Window {
	if w.Start.Day() == 1 && w.End.Equal(w.Start.AddDate(0, 1, -1)) {
		return Month(w.Start.AddDate(0, n, 0))
	}

	days := ledger.DaysBetween(w.Start, w.End) + 1

	return Window{Start: w.Start.AddDate(0, 0, n*days), End: w.End.AddDate(0, 0, n*days)}
}
