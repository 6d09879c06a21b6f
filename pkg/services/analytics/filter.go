package analytics

import (
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// FilterByRange selects the records whose date falls inside the inclusive
// window. An empty input or an empty intersection yields an empty slice.
func FilterByRange(records []domain.FinancialRecord, r domain.DateRange) []domain.FinancialRecord {
	filtered := make([]domain.FinancialRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
