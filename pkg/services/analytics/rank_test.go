package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

func TestTopExpenses(t *testing.T) {
	jan := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	vehicles := []domain.Vehicle{
		{ID: "a", RegNumber: "KAA 100A", Make: "Toyota", Model: "Hilux"},
	}

	t.Run("merges and ranks descending by cost", func(t *testing.T) {
		fuel := []domain.FinancialRecord{
			fuelRecord("f1", "a", jan(1), 2000, 15),
			fuelRecord("f2", "a", jan(2), 8000, 60),
		}
		maintenance := []domain.FinancialRecord{
			maintenanceRecord("m1", "a", jan(3), 5000, "gearbox"),
		}

		entries := TopExpenses(fuel, maintenance, vehicles, 10)

		assert.Len(t, entries, 3)
		assert.Equal(t, 8000.0, entries[0].Cost)
		assert.Equal(t, 5000.0, entries[1].Cost)
		assert.Equal(t, 2000.0, entries[2].Cost)
		assert.Equal(t, domain.RecordKindMaintenance, entries[1].Kind)
	})

	t.Run("ties keep fuel ahead of maintenance", func(t *testing.T) {
		fuel := []domain.FinancialRecord{fuelRecord("f1", "a", jan(1), 1000, 10)}
		maintenance := []domain.FinancialRecord{maintenanceRecord("m1", "a", jan(2), 1000, "service")}

		entries := TopExpenses(fuel, maintenance, vehicles, 10)

		assert.Equal(t, domain.RecordKindFuel, entries[0].Kind)
		assert.Equal(t, domain.RecordKindMaintenance, entries[1].Kind)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		var fuel []domain.FinancialRecord
		for i := 0; i < 25; i++ {
			fuel = append(fuel, fuelRecord(fmt.Sprintf("f%d", i), "a", jan(1+i%28), float64(100+i), 10))
		}

		entries := TopExpenses(fuel, nil, vehicles, 10)

		assert.Len(t, entries, 10)
		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].Cost, entries[i].Cost)
		}
	})

	t.Run("never exceeds merged record count", func(t *testing.T) {
		fuel := []domain.FinancialRecord{fuelRecord("f1", "a", jan(1), 500, 5)}

		entries := TopExpenses(fuel, nil, vehicles, 10)

		assert.Len(t, entries, 1)
	})

	t.Run("unknown vehicle falls back to label", func(t *testing.T) {
		fuel := []domain.FinancialRecord{fuelRecord("f1", "ghost", jan(1), 500, 5)}

		entries := TopExpenses(fuel, nil, vehicles, 10)

		assert.Equal(t, "Unknown", entries[0].VehicleLabel)
	})

	t.Run("resolves vehicle display name", func(t *testing.T) {
		fuel := []domain.FinancialRecord{fuelRecord("f1", "a", jan(1), 500, 5)}

		entries := TopExpenses(fuel, nil, vehicles, 10)

		assert.Equal(t, "KAA 100A (Toyota Hilux)", entries[0].VehicleLabel)
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		assert.Empty(t, TopExpenses(nil, nil, vehicles, 10))
	})
}
