package domain

import "time"

// FuelPrice is an admin-set pump price for a fuel grade, effective from the
// moment it was recorded until a newer one replaces it.
type FuelPrice struct {
	ID            string
	Grade         string // e.g. "petrol", "diesel"
	PricePerLiter float64
	Currency      string
	EffectiveFrom time.Time
	SetBy         string
}
