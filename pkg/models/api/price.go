package api

import "time"

type FuelPrice struct {
	ID            string    `json:"id"`
	Grade         string    `json:"grade"`
	PricePerLiter float64   `json:"pricePerLiter"`
	Currency      string    `json:"currency"`
	EffectiveFrom time.Time `json:"effectiveFrom"`
	SetBy         string    `json:"setBy,omitempty"`
}

type SetFuelPriceRequest struct {
	Grade         string  `json:"grade"`
	PricePerLiter float64 `json:"pricePerLiter"`
	SetBy         string  `json:"setBy,omitempty"`
}
