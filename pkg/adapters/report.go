package adapters

import (
	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/api"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

func MapSnapshotDomainToApi(s domain.AnalyticsSnapshot) api.AnalyticsSnapshot {
	snapshot := api.AnalyticsSnapshot{
		From:             format.Date(s.Range.Start),
		To:               format.Date(s.Range.End),
		Overview:         MapOverviewDomainToApi(s.Overview),
		Monthly:          []api.MonthlySummary{},
		VehicleBreakdown: []api.VehicleBreakdown{},
		TopExpenses:      []api.ExpenseEntry{},
		CostDistribution: []api.CostSlice{},
	}

	for _, m := range s.Monthly {
		snapshot.Monthly = append(snapshot.Monthly, api.MonthlySummary{
			Month:                  m.Label,
			FuelCost:               m.FuelCost,
			MaintenanceCost:        m.MaintenanceCost,
			TotalCost:              m.TotalCost,
			Liters:                 m.Liters,
			FuelRecordCount:        m.FuelRecordCount,
			MaintenanceRecordCount: m.MaintenanceRecordCount,
		})
	}
	for _, v := range s.VehicleBreakdown {
		snapshot.VehicleBreakdown = append(snapshot.VehicleBreakdown, api.VehicleBreakdown{
			VehicleID:               v.VehicleID,
			DisplayName:             v.DisplayName,
			FuelCost:                v.FuelCost,
			MaintenanceCost:         v.MaintenanceCost,
			TotalCost:               v.TotalCost,
			Liters:                  v.Liters,
			AverageFuelCostPerLiter: v.AverageFuelCostPerLiter,
			FuelRecordCount:         v.FuelRecordCount,
			MaintenanceRecordCount:  v.MaintenanceRecordCount,
		})
	}
	for _, e := range s.TopExpenses {
		snapshot.TopExpenses = append(snapshot.TopExpenses, api.ExpenseEntry{
			Kind:         string(e.Kind),
			Date:         e.Date,
			Cost:         e.Cost,
			VehicleLabel: e.VehicleLabel,
			Description:  e.Description,
		})
	}
	for _, c := range s.CostDistribution {
		snapshot.CostDistribution = append(snapshot.CostDistribution, api.CostSlice{
			Label: c.Label,
			Value: c.Value,
		})
	}

	return snapshot
}

func MapOverviewDomainToApi(o domain.Overview) api.Overview {
	return api.Overview{
		TotalFuelCost:           o.TotalFuelCost,
		TotalMaintenanceCost:    o.TotalMaintenanceCost,
		TotalCost:               o.TotalCost,
		TotalLiters:             o.TotalLiters,
		AverageFuelCostPerLiter: o.AverageFuelCostPerLiter,
		ActiveVehicles:          o.ActiveVehicles,
	}
}
