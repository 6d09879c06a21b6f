package fleet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/adapters"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/store"
)

// Store is the document-store surface the fleet service needs: list/create
// over the vehicles and record collections, with date-range queries on
// records.
type Store interface {
	Vehicles(ctx context.Context) ([]store.Vehicle, error)
	AddVehicle(ctx context.Context, v store.Vehicle) error
	FuelRecords(ctx context.Context, vehicleID string, from, to time.Time) ([]store.FuelRecord, error)
	AddFuelRecord(ctx context.Context, r store.FuelRecord) error
	MaintenanceRecords(ctx context.Context, vehicleID string, from, to time.Time) ([]store.MaintenanceRecord, error)
	AddMaintenanceRecord(ctx context.Context, r store.MaintenanceRecord) error
}

// Service exposes the vehicle registry and record tracking in domain terms.
type Service interface {
	Vehicles(ctx context.Context) ([]domain.Vehicle, error)
	AddVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	FuelRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error)
	AddFuelRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error)
	MaintenanceRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error)
	AddMaintenanceRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error)
}

type service struct {
	store Store
}

func NewService(s Store) Service {
	return &service{store: s}
}

func (s *service) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	stored, err := s.store.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	vehicles := make([]domain.Vehicle, 0, len(stored))
	for _, v := range stored {
		vehicles = append(vehicles, adapters.MapStoreVehicleToDomain(v))
	}
	return vehicles, nil
}

func (s *service) AddVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if err := s.store.AddVehicle(ctx, adapters.MapDomainVehicleToStore(v)); err != nil {
		return domain.Vehicle{}, fmt.Errorf("failed to add vehicle: %w", err)
	}
	return v, nil
}

func (s *service) FuelRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error) {
	stored, err := s.store.FuelRecords(ctx, vehicleID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load fuel records: %w", err)
	}

	records := make([]domain.FinancialRecord, 0, len(stored))
	for _, rec := range stored {
		records = append(records, adapters.MapStoreFuelRecordToDomain(rec))
	}
	return records, nil
}

func (s *service) AddFuelRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	stored := store.FuelRecord{
		ID:        rec.ID,
		VehicleID: rec.VehicleID,
		Date:      rec.Date,
		Cost:      rec.Cost,
	}
	if rec.Fuel != nil {
		stored.Liters = rec.Fuel.Liters
		stored.Station = rec.Fuel.Station
		stored.Notes = rec.Fuel.Notes
	}
	if err := s.store.AddFuelRecord(ctx, stored); err != nil {
		return domain.FinancialRecord{}, fmt.Errorf("failed to add fuel record: %w", err)
	}
	return rec, nil
}

func (s *service) MaintenanceRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error) {
	stored, err := s.store.MaintenanceRecords(ctx, vehicleID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance records: %w", err)
	}

	records := make([]domain.FinancialRecord, 0, len(stored))
	for _, rec := range stored {
		records = append(records, adapters.MapStoreMaintenanceRecordToDomain(rec))
	}
	return records, nil
}

func (s *service) AddMaintenanceRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	stored := store.MaintenanceRecord{
		ID:        rec.ID,
		VehicleID: rec.VehicleID,
		Date:      rec.Date,
		Cost:      rec.Cost,
	}
	if rec.Maintenance != nil {
		stored.Description = rec.Maintenance.Description
		stored.ServiceProvider = rec.Maintenance.ServiceProvider
	}
	if err := s.store.AddMaintenanceRecord(ctx, stored); err != nil {
		return domain.FinancialRecord{}, fmt.Errorf("failed to add maintenance record: %w", err)
	}
	return rec, nil
}
