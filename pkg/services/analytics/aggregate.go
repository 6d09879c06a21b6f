package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// AggregateOverall reduces both record kinds into fleet-wide totals. Totals
// are left unrounded. The per-liter average is zero-guarded so an empty or
// liter-less window can never divide by zero.
func AggregateOverall(fuel, maintenance []domain.FinancialRecord) domain.Overview {
	var o domain.Overview
	for _, r := range fuel {
		o.TotalFuelCost += r.Cost
		o.TotalLiters += r.Liters()
	}
	for _, r := range maintenance {
		o.TotalMaintenanceCost += r.Cost
	}
	o.TotalCost = o.TotalFuelCost + o.TotalMaintenanceCost
	if o.TotalLiters > 0 {
		o.AverageFuelCostPerLiter = o.TotalFuelCost / o.TotalLiters
	}
	o.ActiveVehicles = activeVehicleCount(fuel, maintenance)
	return o
}

// AggregateByMonth buckets the records into the given calendar months and
// sums each bucket. Costs are rounded to 2 decimal places and liters to 1 at
// construction. Months with no records still produce a zero-valued summary.
func AggregateByMonth(months []time.Time, fuel, maintenance []domain.FinancialRecord) []domain.MonthlySummary {
	summaries := make([]domain.MonthlySummary, 0, len(months))
	for _, month := range months {
		window := MonthWindow(month)
		monthFuel := FilterByRange(fuel, window)
		monthMaintenance := FilterByRange(maintenance, window)

		var fuelCost, maintenanceCost, liters float64
		for _, r := range monthFuel {
			fuelCost += r.Cost
			liters += r.Liters()
		}
		for _, r := range monthMaintenance {
			maintenanceCost += r.Cost
		}

		summaries = append(summaries, domain.MonthlySummary{
			Month:                  month,
			Label:                  format.MonthLabel(month),
			FuelCost:               round2(fuelCost),
			MaintenanceCost:        round2(maintenanceCost),
			TotalCost:              round2(fuelCost + maintenanceCost),
			Liters:                 round1(liters),
			FuelRecordCount:        len(monthFuel),
			MaintenanceRecordCount: len(monthMaintenance),
		})
	}
	return summaries
}

// AggregateByVehicle rolls the records up per vehicle and sorts the result
// descending by total cost. The sort is stable: vehicles with equal totals
// keep their input order.
func AggregateByVehicle(vehicles []domain.Vehicle, fuel, maintenance []domain.FinancialRecord) []domain.VehicleBreakdown {
	breakdown := make([]domain.VehicleBreakdown, 0, len(vehicles))
	for _, v := range vehicles {
		entry := domain.VehicleBreakdown{
			VehicleID:   v.ID,
			DisplayName: v.DisplayName(),
		}

		var fuelCost, maintenanceCost, liters float64
		for _, r := range fuel {
			if r.VehicleID != v.ID {
				continue
			}
			fuelCost += r.Cost
			liters += r.Liters()
			entry.FuelRecordCount++
		}
		for _, r := range maintenance {
			if r.VehicleID != v.ID {
				continue
			}
			maintenanceCost += r.Cost
			entry.MaintenanceRecordCount++
		}

		entry.FuelCost = round2(fuelCost)
		entry.MaintenanceCost = round2(maintenanceCost)
		entry.TotalCost = round2(fuelCost + maintenanceCost)
		entry.Liters = round1(liters)
		if liters > 0 {
			entry.AverageFuelCostPerLiter = round2(fuelCost / liters)
		}

		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalCost > breakdown[j].TotalCost
	})
	return breakdown
}

// activeVehicleCount counts vehicles with at least one record in the window.
func activeVehicleCount(fuel, maintenance []domain.FinancialRecord) int {
	seen := make(map[string]struct{})
	for _, r := range fuel {
		seen[r.VehicleID] = struct{}{}
	}
	for _, r := range maintenance {
		seen[r.VehicleID] = struct{}{}
	}
	return len(seen)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
