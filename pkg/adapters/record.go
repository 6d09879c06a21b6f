package adapters

import (
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/api"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/store"
)

func MapStoreVehicleToDomain(v store.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		ID:        v.ID,
		RegNumber: v.RegNumber,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
	}
}

func MapDomainVehicleToStore(v domain.Vehicle) store.Vehicle {
	return store.Vehicle{
		ID:        v.ID,
		RegNumber: v.RegNumber,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
	}
}

func MapVehicleDomainToApi(v domain.Vehicle) api.Vehicle {
	return api.Vehicle{
		ID:        v.ID,
		RegNumber: v.RegNumber,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
	}
}

// MapStoreFuelRecordToDomain lifts a fuel document into the tagged financial
// record used by the analytics pipeline.
func MapStoreFuelRecordToDomain(r store.FuelRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Date:      r.Date,
		Cost:      r.Cost,
		Kind:      domain.RecordKindFuel,
		Fuel: &domain.FuelDetails{
			Liters:  r.Liters,
			Station: r.Station,
			Notes:   r.Notes,
		},
	}
}

func MapStoreMaintenanceRecordToDomain(r store.MaintenanceRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Date:      r.Date,
		Cost:      r.Cost,
		Kind:      domain.RecordKindMaintenance,
		Maintenance: &domain.MaintenanceDetails{
			Description:     r.Description,
			ServiceProvider: r.ServiceProvider,
		},
	}
}

func MapFuelRecordDomainToApi(r domain.FinancialRecord) api.FuelRecord {
	rec := api.FuelRecord{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Date:      r.Date,
		Cost:      r.Cost,
	}
	if r.Fuel != nil {
		rec.Liters = r.Fuel.Liters
		rec.Station = r.Fuel.Station
		rec.Notes = r.Fuel.Notes
	}
	return rec
}

func MapMaintenanceRecordDomainToApi(r domain.FinancialRecord) api.MaintenanceRecord {
	rec := api.MaintenanceRecord{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Date:      r.Date,
		Cost:      r.Cost,
	}
	if r.Maintenance != nil {
		rec.Description = r.Maintenance.Description
		rec.ServiceProvider = r.Maintenance.ServiceProvider
	}
	return rec
}

func MapFuelPriceStoreToDomain(p store.FuelPrice) domain.FuelPrice {
	return domain.FuelPrice{
		ID:            p.ID,
		Grade:         p.Grade,
		PricePerLiter: p.PricePerLiter,
		Currency:      p.Currency,
		EffectiveFrom: p.EffectiveFrom,
		SetBy:         p.SetBy,
	}
}

func MapFuelPriceDomainToStore(p domain.FuelPrice) store.FuelPrice {
	return store.FuelPrice{
		ID:            p.ID,
		Grade:         p.Grade,
		PricePerLiter: p.PricePerLiter,
		Currency:      p.Currency,
		EffectiveFrom: p.EffectiveFrom,
		SetBy:         p.SetBy,
	}
}

func MapFuelPriceDomainToApi(p domain.FuelPrice) api.FuelPrice {
	return api.FuelPrice{
		ID:            p.ID,
		Grade:         p.Grade,
		PricePerLiter: p.PricePerLiter,
		Currency:      p.Currency,
		EffectiveFrom: p.EffectiveFrom,
		SetBy:         p.SetBy,
	}
}
