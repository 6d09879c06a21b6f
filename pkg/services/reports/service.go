package reports

import (
	"context"
	"fmt"
	"time"

	reportexport "github.com/kisurizzz/fleet-manager-sub001/pkg/export"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/analytics"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/fleet"
)

// Exportable tables for the CSV endpoint.
const (
	TableRecords  = "records"
	TableVehicles = "vehicles"
	TableMonthly  = "monthly"
)

// Report names embedded in export filenames.
const (
	recordsReportName  = "fuel-maintenance-records"
	vehiclesReportName = "vehicle-breakdown"
	monthlyReportName  = "monthly-trends"
	fleetReportName    = "fleet-report"
)

// Service generates analytics snapshots and export artifacts for a date
// range. Every call fetches fresh and recomputes wholesale; nothing is cached
// between calls, so concurrent requests cannot observe each other's data.
type Service interface {
	Snapshot(ctx context.Context, r domain.DateRange) (domain.AnalyticsSnapshot, error)
	ExportCSV(ctx context.Context, r domain.DateRange, table string, now time.Time) (reportexport.Artifact, error)
	ExportJSON(ctx context.Context, r domain.DateRange, now time.Time) (reportexport.Artifact, error)
}

type service struct {
	fleet fleet.Service
}

func NewService(fleetSvc fleet.Service) Service {
	return &service{fleet: fleetSvc}
}

// Snapshot fetches all three collections and runs the pure report pipeline.
// If any fetch fails, no aggregation runs and no snapshot is produced.
func (s *service) Snapshot(ctx context.Context, r domain.DateRange) (domain.AnalyticsSnapshot, error) {
	vehicles, fuel, maintenance, err := s.fetch(ctx, r)
	if err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	return analytics.Generate(vehicles, fuel, maintenance, r), nil
}

// ExportCSV renders one of the exportable tables as a CSV artifact.
func (s *service) ExportCSV(ctx context.Context, r domain.DateRange, table string, now time.Time) (reportexport.Artifact, error) {
	vehicles, fuel, maintenance, err := s.fetch(ctx, r)
	if err != nil {
		return reportexport.Artifact{}, err
	}

	snapshot := analytics.Generate(vehicles, fuel, maintenance, r)

	switch table {
	case TableRecords:
		records := append(analytics.FilterByRange(fuel, r), analytics.FilterByRange(maintenance, r)...)
		return reportexport.CSVArtifact(recordsReportName, reportexport.FormatFinancialRecords(records, vehicles), now)
	case TableVehicles:
		return reportexport.CSVArtifact(vehiclesReportName, reportexport.FormatVehicleBreakdown(snapshot.VehicleBreakdown, vehicles), now)
	case TableMonthly:
		return reportexport.CSVArtifact(monthlyReportName, reportexport.FormatMonthlyTrends(snapshot.Monthly), now)
	default:
		return reportexport.Artifact{}, fmt.Errorf("unknown export table %q", table)
	}
}

// ExportJSON renders the full fleet report as a JSON artifact.
func (s *service) ExportJSON(ctx context.Context, r domain.DateRange, now time.Time) (reportexport.Artifact, error) {
	vehicles, fuel, maintenance, err := s.fetch(ctx, r)
	if err != nil {
		return reportexport.Artifact{}, err
	}

	snapshot := analytics.Generate(vehicles, fuel, maintenance, r)
	return reportexport.JSONArtifact(fleetReportName, reportexport.BuildFleetReport(snapshot, vehicles, now), now)
}

// fetch loads vehicles, fuel records, and maintenance records, returning an
// error if any of the three is unavailable. Aggregation never sees partial
// data.
func (s *service) fetch(ctx context.Context, r domain.DateRange) ([]domain.Vehicle, []domain.FinancialRecord, []domain.FinancialRecord, error) {
	vehicles, err := s.fleet.Vehicles(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch vehicles: %w", err)
	}
	fuel, err := s.fleet.FuelRecords(ctx, "", r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch fuel records: %w", err)
	}
	maintenance, err := s.fleet.MaintenanceRecords(ctx, "", r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch maintenance records: %w", err)
	}
	return vehicles, fuel, maintenance, nil
}
