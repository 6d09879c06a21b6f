package domain

import "time"

// Overview holds fleet-wide totals for a report window. Totals are kept
// unrounded; rounding happens at export time.
type Overview struct {
	TotalFuelCost           float64
	TotalMaintenanceCost    float64
	TotalCost               float64
	TotalLiters             float64
	AverageFuelCostPerLiter float64
	ActiveVehicles          int
}

// MonthlySummary is one calendar-month bucket of a report. Cost fields are
// rounded to 2 decimal places and liters to 1 at construction; a summary is
// read-only afterward.
type MonthlySummary struct {
	Month                  time.Time // first of the month
	Label                  string    // e.g. "Jan 2024"
	FuelCost               float64
	MaintenanceCost        float64
	TotalCost              float64
	Liters                 float64
	FuelRecordCount        int
	MaintenanceRecordCount int
}

// VehicleBreakdown is the per-vehicle rollup, sorted descending by TotalCost
// within a snapshot.
type VehicleBreakdown struct {
	VehicleID               string
	DisplayName             string
	FuelCost                float64
	MaintenanceCost         float64
	TotalCost               float64
	Liters                  float64
	AverageFuelCostPerLiter float64
	FuelRecordCount         int
	MaintenanceRecordCount  int
}

// ExpenseEntry is a flattened view of one financial record, used for the
// top-expenses ranking.
type ExpenseEntry struct {
	Kind         RecordKind
	Date         time.Time
	Cost         float64
	VehicleLabel string
	Description  string
}

// CostSlice is one category of the fuel/maintenance cost split.
type CostSlice struct {
	Label string
	Value float64
}

// AnalyticsSnapshot is the aggregate result of one report generation. It is
// recomputed wholesale when inputs change, never patched incrementally.
type AnalyticsSnapshot struct {
	Range            DateRange
	Overview         Overview
	Monthly          []MonthlySummary
	VehicleBreakdown []VehicleBreakdown
	TopExpenses      []ExpenseEntry
	CostDistribution []CostSlice
}
