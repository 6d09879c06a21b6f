package reports

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

type mockFleetService struct {
	mock.Mock
}

func (m *mockFleetService) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockFleetService) AddVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(domain.Vehicle), args.Error(1)
}

func (m *mockFleetService) FuelRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, vehicleID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *mockFleetService) AddFuelRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(domain.FinancialRecord), args.Error(1)
}

func (m *mockFleetService) MaintenanceRecords(ctx context.Context, vehicleID string, r domain.DateRange) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, vehicleID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *mockFleetService) AddMaintenanceRecord(ctx context.Context, rec domain.FinancialRecord) (domain.FinancialRecord, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(domain.FinancialRecord), args.Error(1)
}

func testWindow() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
	}
}

func testFleetData() ([]domain.Vehicle, []domain.FinancialRecord, []domain.FinancialRecord) {
	vehicles := []domain.Vehicle{
		{ID: "a", RegNumber: "KAA 100A", Make: "Toyota", Model: "Hilux", Year: 2020},
	}
	fuel := []domain.FinancialRecord{
		{
			ID: "f1", VehicleID: "a",
			Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Cost: 3000, Kind: domain.RecordKindFuel,
			Fuel: &domain.FuelDetails{Liters: 25, Station: "Shell"},
		},
	}
	maintenance := []domain.FinancialRecord{
		{
			ID: "m1", VehicleID: "a",
			Date: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Cost: 1000, Kind: domain.RecordKindMaintenance,
			Maintenance: &domain.MaintenanceDetails{Description: "service"},
		},
	}
	return vehicles, fuel, maintenance
}

func newMockedService(t *testing.T) (*mockFleetService, Service) {
	t.Helper()
	fleetSvc := new(mockFleetService)
	return fleetSvc, NewService(fleetSvc)
}

func TestSnapshot(t *testing.T) {
	fleetSvc, svc := newMockedService(t)
	vehicles, fuel, maintenance := testFleetData()
	window := testWindow()

	fleetSvc.On("Vehicles", mock.Anything).Return(vehicles, nil)
	fleetSvc.On("FuelRecords", mock.Anything, "", window).Return(fuel, nil)
	fleetSvc.On("MaintenanceRecords", mock.Anything, "", window).Return(maintenance, nil)

	snapshot, err := svc.Snapshot(context.Background(), window)

	require.NoError(t, err)
	assert.Equal(t, window, snapshot.Range)
	assert.Equal(t, 4000.0, snapshot.Overview.TotalCost)
	assert.Len(t, snapshot.Monthly, 1)
	assert.Len(t, snapshot.VehicleBreakdown, 1)
	fleetSvc.AssertExpectations(t)
}

func TestSnapshotFetchFailureSkipsAggregation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mockFleetService)
	}{
		{
			name: "vehicles unavailable",
			setup: func(m *mockFleetService) {
				m.On("Vehicles", mock.Anything).Return(nil, errors.New("connection reset"))
			},
		},
		{
			name: "fuel records unavailable",
			setup: func(m *mockFleetService) {
				m.On("Vehicles", mock.Anything).Return([]domain.Vehicle{}, nil)
				m.On("FuelRecords", mock.Anything, "", mock.Anything).Return(nil, errors.New("connection reset"))
			},
		},
		{
			name: "maintenance records unavailable",
			setup: func(m *mockFleetService) {
				m.On("Vehicles", mock.Anything).Return([]domain.Vehicle{}, nil)
				m.On("FuelRecords", mock.Anything, "", mock.Anything).Return([]domain.FinancialRecord{}, nil)
				m.On("MaintenanceRecords", mock.Anything, "", mock.Anything).Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fleetSvc, svc := newMockedService(t)
			tt.setup(fleetSvc)

			snapshot, err := svc.Snapshot(context.Background(), testWindow())

			require.Error(t, err)
			assert.Equal(t, domain.AnalyticsSnapshot{}, snapshot)
			fleetSvc.AssertExpectations(t)
		})
	}
}

func TestExportCSV(t *testing.T) {
	now := time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		table        string
		wantFilename string
		wantHeader   string
	}{
		{
			name:         "records table",
			table:        TableRecords,
			wantFilename: "fuel-maintenance-records_2024-02-01_09-00.csv",
			wantHeader:   "Date,Vehicle,Type,Description,Cost,Liters,Station",
		},
		{
			name:         "vehicles table",
			table:        TableVehicles,
			wantFilename: "vehicle-breakdown_2024-02-01_09-00.csv",
			wantHeader:   "Registration Number,Make,Model,Year,Total Cost,Fuel Cost,Maintenance Cost,Fuel Consumed (L),Average Fuel Cost per Liter,Fuel Records,Maintenance Records",
		},
		{
			name:         "monthly table",
			table:        TableMonthly,
			wantFilename: "monthly-trends_2024-02-01_09-00.csv",
			wantHeader:   "Month,Fuel Cost,Maintenance Cost,Total Cost,Fuel Consumed (L),Fuel Records,Maintenance Records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fleetSvc, svc := newMockedService(t)
			vehicles, fuel, maintenance := testFleetData()
			window := testWindow()
			fleetSvc.On("Vehicles", mock.Anything).Return(vehicles, nil)
			fleetSvc.On("FuelRecords", mock.Anything, "", window).Return(fuel, nil)
			fleetSvc.On("MaintenanceRecords", mock.Anything, "", window).Return(maintenance, nil)

			artifact, err := svc.ExportCSV(context.Background(), window, tt.table, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFilename, artifact.Filename)
			assert.Equal(t, "text/csv", artifact.MIMEType)
			lines := string(artifact.Data)
			assert.Equal(t, tt.wantHeader, lines[:len(tt.wantHeader)])
		})
	}
}

func TestExportCSVUnknownTable(t *testing.T) {
	fleetSvc, svc := newMockedService(t)
	vehicles, fuel, maintenance := testFleetData()
	window := testWindow()
	fleetSvc.On("Vehicles", mock.Anything).Return(vehicles, nil)
	fleetSvc.On("FuelRecords", mock.Anything, "", window).Return(fuel, nil)
	fleetSvc.On("MaintenanceRecords", mock.Anything, "", window).Return(maintenance, nil)

	_, err := svc.ExportCSV(context.Background(), window, "drivers", time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export table")
}

func TestExportJSON(t *testing.T) {
	fleetSvc, svc := newMockedService(t)
	vehicles, fuel, maintenance := testFleetData()
	window := testWindow()
	now := time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)
	fleetSvc.On("Vehicles", mock.Anything).Return(vehicles, nil)
	fleetSvc.On("FuelRecords", mock.Anything, "", window).Return(fuel, nil)
	fleetSvc.On("MaintenanceRecords", mock.Anything, "", window).Return(maintenance, nil)

	artifact, err := svc.ExportJSON(context.Background(), window, now)

	require.NoError(t, err)
	assert.Equal(t, "fleet-report_2024-02-01_09-00.json", artifact.Filename)
	assert.Equal(t, "application/json", artifact.MIMEType)

	var report struct {
		ReportInfo struct {
			GeneratedAt string `json:"generatedAt"`
			Period      struct {
				From string `json:"from"`
				To   string `json:"to"`
			} `json:"period"`
		} `json:"reportInfo"`
		Overview map[string]string `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(artifact.Data, &report))
	assert.Equal(t, "01-02-2024 09:00:00", report.ReportInfo.GeneratedAt)
	assert.Equal(t, "01-01-2024", report.ReportInfo.Period.From)
	assert.Equal(t, "31-01-2024", report.ReportInfo.Period.To)
	assert.Equal(t, "KES 4,000.00", report.Overview["Total Cost"])
}
