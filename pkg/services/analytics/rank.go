package analytics

import (
	"sort"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// unknownVehicleLabel is used when a record references a vehicle that is not
// in the registry. Ranking never fails on a dangling reference.
const unknownVehicleLabel = "Unknown"

// TopExpenses merges both record kinds, ranks them by cost descending, and
// keeps the first limit entries. The sort is stable: ties keep merge order,
// fuel records ahead of maintenance records.
func TopExpenses(fuel, maintenance []domain.FinancialRecord, vehicles []domain.Vehicle, limit int) []domain.ExpenseEntry {
	labels := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		labels[v.ID] = v.DisplayName()
	}

	entries := make([]domain.ExpenseEntry, 0, len(fuel)+len(maintenance))
	for _, r := range fuel {
		entries = append(entries, newExpenseEntry(r, labels))
	}
	for _, r := range maintenance {
		entries = append(entries, newExpenseEntry(r, labels))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Cost > entries[j].Cost
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func newExpenseEntry(r domain.FinancialRecord, labels map[string]string) domain.ExpenseEntry {
	label, ok := labels[r.VehicleID]
	if !ok {
		label = unknownVehicleLabel
	}
	return domain.ExpenseEntry{
		Kind:         r.Kind,
		Date:         r.Date,
		Cost:         r.Cost,
		VehicleLabel: label,
		Description:  r.Description(),
	}
}
