package domain

import "time"

// Period selects how a report date range is constructed.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the range, boundaries included.
func (r DateRange) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// IsValid reports whether Start <= End. An inverted range matches nothing;
// it is treated as empty rather than as an error.
func (r DateRange) IsValid() bool {
	return !r.Start.After(r.End)
}

// RangeForPeriod builds the date range for a preset, anchored at now.
// The quarter preset covers the current month plus the two prior ones.
func RangeForPeriod(p Period, now time.Time) DateRange {
	switch p {
	case PeriodQuarter:
		// Shift from the first of the month so day-of-month normalization
		// cannot land in the wrong month.
		return DateRange{
			Start: StartOfMonth(now).AddDate(0, -2, 0),
			End:   EndOfMonth(now),
		}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{
			Start: start,
			End:   start.AddDate(1, 0, 0).Add(-time.Nanosecond),
		}
	default:
		return DateRange{Start: StartOfMonth(now), End: EndOfMonth(now)}
	}
}

// StartOfMonth truncates ts to the first instant of its calendar month.
func StartOfMonth(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, ts.Location())
}

// EndOfMonth returns the last instant of ts's calendar month.
func EndOfMonth(ts time.Time) time.Time {
	return StartOfMonth(ts).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
