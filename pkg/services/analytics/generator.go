package analytics

import (
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// TopExpenseLimit caps the ranked expense list in a snapshot.
const TopExpenseLimit = 10

// Generate runs the full report pipeline over already-fetched collections:
// filter, overview, monthly buckets, vehicle breakdown, top expenses, cost
// distribution, in that order. It is a pure function; calling it twice with
// the same inputs yields the same snapshot, and it keeps no state between
// calls. Callers must pass complete collections — partial fetches are never
// aggregated.
func Generate(vehicles []domain.Vehicle, fuel, maintenance []domain.FinancialRecord, r domain.DateRange) domain.AnalyticsSnapshot {
	fuelInRange := FilterByRange(fuel, r)
	maintenanceInRange := FilterByRange(maintenance, r)

	overview := AggregateOverall(fuelInRange, maintenanceInRange)
	monthly := AggregateByMonth(MonthsInRange(r), fuelInRange, maintenanceInRange)
	breakdown := AggregateByVehicle(vehicles, fuelInRange, maintenanceInRange)
	topExpenses := TopExpenses(fuelInRange, maintenanceInRange, vehicles, TopExpenseLimit)

	return domain.AnalyticsSnapshot{
		Range:            r,
		Overview:         overview,
		Monthly:          monthly,
		VehicleBreakdown: breakdown,
		TopExpenses:      topExpenses,
		CostDistribution: []domain.CostSlice{
			{Label: "Fuel", Value: overview.TotalFuelCost},
			{Label: "Maintenance", Value: overview.TotalMaintenanceCost},
		},
	}
}
