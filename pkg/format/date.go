package format

import "time"

// Fixed date patterns used across reports, exports, and query parameters.
const (
	dateLayout      = "02-01-2006"          // dd-MM-yyyy
	dateTimeLayout  = "02-01-2006 15:04:05" // dd-MM-yyyy HH:mm:ss
	fileStampLayout = "2006-01-02_15-04"    // yyyy-MM-dd_HH-mm
	monthLayout     = "Jan 2006"
)

// Date renders a timestamp as dd-MM-yyyy.
func Date(ts time.Time) string {
	return ts.Format(dateLayout)
}

// DateTime renders a timestamp as dd-MM-yyyy HH:mm:ss.
func DateTime(ts time.Time) string {
	return ts.Format(dateTimeLayout)
}

// FileStamp renders the timestamp fragment embedded in export filenames.
func FileStamp(ts time.Time) string {
	return ts.Format(fileStampLayout)
}

// MonthLabel renders the human label of a calendar month, e.g. "Jan 2024".
func MonthLabel(month time.Time) string {
	return month.Format(monthLayout)
}

// ParseDate parses a dd-MM-yyyy value, as used by from/to query parameters.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
