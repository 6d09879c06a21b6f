package api

import "time"

type FuelRecord struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicleId"`
	Date      time.Time `json:"date"`
	Cost      float64   `json:"cost"`
	Liters    float64   `json:"liters"`
	Station   string    `json:"station"`
	Notes     string    `json:"notes,omitempty"`
}

type MaintenanceRecord struct {
	ID              string    `json:"id"`
	VehicleID       string    `json:"vehicleId"`
	Date            time.Time `json:"date"`
	Cost            float64   `json:"cost"`
	Description     string    `json:"description"`
	ServiceProvider string    `json:"serviceProvider"`
}

type CreateFuelRecordRequest struct {
	Date    time.Time `json:"date"`
	Cost    float64   `json:"cost"`
	Liters  float64   `json:"liters"`
	Station string    `json:"station"`
	Notes   string    `json:"notes,omitempty"`
}

type CreateMaintenanceRecordRequest struct {
	Date            time.Time `json:"date"`
	Cost            float64   `json:"cost"`
	Description     string    `json:"description"`
	ServiceProvider string    `json:"serviceProvider"`
}
