package domain

import "time"

// RecordKind tags the two financial record variants.
type RecordKind string

const (
	RecordKindFuel        RecordKind = "Fuel"
	RecordKindMaintenance RecordKind = "Maintenance"
)

// FinancialRecord is a single dated expense against a vehicle. The common
// fields (date, cost, vehicle) carry the aggregation; exactly one of the
// kind-specific payloads is set, matching Kind.
type FinancialRecord struct {
	ID        string
	VehicleID string
	Date      time.Time
	Cost      float64
	Kind      RecordKind

	Fuel        *FuelDetails
	Maintenance *MaintenanceDetails
}

type FuelDetails struct {
	Liters  float64
	Station string
	Notes   string
}

type MaintenanceDetails struct {
	Description     string
	ServiceProvider string
}

// Liters returns the fuel quantity, or 0 for records without one. Sparse
// source data never fails aggregation.
func (r FinancialRecord) Liters() float64 {
	if r.Fuel == nil {
		return 0
	}
	return r.Fuel.Liters
}

// Description returns the kind-specific free-text description.
func (r FinancialRecord) Description() string {
	switch {
	case r.Kind == RecordKindFuel && r.Fuel != nil:
		return r.Fuel.Notes
	case r.Kind == RecordKindMaintenance && r.Maintenance != nil:
		return r.Maintenance.Description
	}
	return ""
}
