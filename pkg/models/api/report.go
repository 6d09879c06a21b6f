package api

import "time"

type Overview struct {
	TotalFuelCost           float64 `json:"totalFuelCost"`
	TotalMaintenanceCost    float64 `json:"totalMaintenanceCost"`
	TotalCost               float64 `json:"totalCost"`
	TotalLiters             float64 `json:"totalLiters"`
	AverageFuelCostPerLiter float64 `json:"averageFuelCostPerLiter"`
	ActiveVehicles          int     `json:"activeVehicles"`
}

type MonthlySummary struct {
	Month                  string  `json:"month"`
	FuelCost               float64 `json:"fuelCost"`
	MaintenanceCost        float64 `json:"maintenanceCost"`
	TotalCost              float64 `json:"totalCost"`
	Liters                 float64 `json:"liters"`
	FuelRecordCount        int     `json:"fuelRecords"`
	MaintenanceRecordCount int     `json:"maintenanceRecords"`
}

type VehicleBreakdown struct {
	VehicleID               string  `json:"vehicleId"`
	DisplayName             string  `json:"displayName"`
	FuelCost                float64 `json:"fuelCost"`
	MaintenanceCost         float64 `json:"maintenanceCost"`
	TotalCost               float64 `json:"totalCost"`
	Liters                  float64 `json:"liters"`
	AverageFuelCostPerLiter float64 `json:"averageFuelCostPerLiter"`
	FuelRecordCount         int     `json:"fuelRecords"`
	MaintenanceRecordCount  int     `json:"maintenanceRecords"`
}

type ExpenseEntry struct {
	Kind         string    `json:"kind"`
	Date         time.Time `json:"date"`
	Cost         float64   `json:"cost"`
	VehicleLabel string    `json:"vehicle"`
	Description  string    `json:"description"`
}

type CostSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type AnalyticsSnapshot struct {
	From             string             `json:"from"`
	To               string             `json:"to"`
	Overview         Overview           `json:"overview"`
	Monthly          []MonthlySummary   `json:"monthly"`
	VehicleBreakdown []VehicleBreakdown `json:"vehicleBreakdown"`
	TopExpenses      []ExpenseEntry     `json:"topExpenses"`
	CostDistribution []CostSlice        `json:"costDistribution"`
}
