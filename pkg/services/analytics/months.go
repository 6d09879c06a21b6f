package analytics

import (
	"time"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// MonthsInRange lists the first-of-month representative of every calendar
// month touched by the range, in chronological order. A partial month at
// either boundary is still listed; bucket windows are whole calendar months,
// never clipped to the range. An inverted range yields no months.
func MonthsInRange(r domain.DateRange) []time.Time {
	if !r.IsValid() {
		return nil
	}

	var months []time.Time
	for m := domain.StartOfMonth(r.Start); !m.After(r.End); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// MonthWindow is the inclusive [first instant, last instant] range of the
// calendar month that holds month.
func MonthWindow(month time.Time) domain.DateRange {
	return domain.DateRange{
		Start: domain.StartOfMonth(month),
		End:   domain.EndOfMonth(month),
	}
}
