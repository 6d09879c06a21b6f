package store

import "time"

// Persistence shapes for the Mongo collections. Field names mirror the
// document keys used by the dashboard frontend.

type Vehicle struct {
	ID        string `bson:"_id"`
	RegNumber string `bson:"regNumber"`
	Make      string `bson:"make"`
	Model     string `bson:"model"`
	Year      int    `bson:"year"`
}

type FuelRecord struct {
	ID        string    `bson:"_id"`
	VehicleID string    `bson:"vehicleId"`
	Date      time.Time `bson:"date"`
	Cost      float64   `bson:"cost"`
	Liters    float64   `bson:"liters"`
	Station   string    `bson:"station"`
	Notes     string    `bson:"notes,omitempty"`
}

type MaintenanceRecord struct {
	ID              string    `bson:"_id"`
	VehicleID       string    `bson:"vehicleId"`
	Date            time.Time `bson:"date"`
	Cost            float64   `bson:"cost"`
	Description     string    `bson:"description"`
	ServiceProvider string    `bson:"serviceProvider"`
}

type FuelPrice struct {
	ID            string    `bson:"_id"`
	Grade         string    `bson:"grade"`
	PricePerLiter float64   `bson:"pricePerLiter"`
	Currency      string    `bson:"currency"`
	EffectiveFrom time.Time `bson:"effectiveFrom"`
	SetBy         string    `bson:"setBy,omitempty"`
}
