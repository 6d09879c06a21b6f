package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

// Row is one flat export row, keyed by column label.
type Row map[string]string

// Table is an ordered set of export rows. Columns fixes both the CSV header
// and the cell order.
type Table struct {
	Columns []string
	Rows    []Row
}

// Column labels are part of the export contract; the dashboard frontend and
// downstream spreadsheets rely on these exact strings.
const (
	colDate            = "Date"
	colVehicle         = "Vehicle"
	colType            = "Type"
	colDescription     = "Description"
	colCost            = "Cost"
	colLiters          = "Liters"
	colStation         = "Station"
	colServiceProvider = "Service Provider"

	colRegNumber        = "Registration Number"
	colMake             = "Make"
	colModel            = "Model"
	colYear             = "Year"
	colTotalCost        = "Total Cost"
	colFuelCost         = "Fuel Cost"
	colMaintenanceCost  = "Maintenance Cost"
	colFuelConsumed     = "Fuel Consumed (L)"
	colAvgFuelCost      = "Average Fuel Cost per Liter"
	colFuelRecords      = "Fuel Records"
	colMaintRecords     = "Maintenance Records"
	colMonth            = "Month"
	colActiveVehicles   = "Active Vehicles"
)

// FormatFinancialRecords flattens raw records into export rows. The Liters,
// Station, and Service Provider columns appear only when at least one record
// carries the field.
func FormatFinancialRecords(records []domain.FinancialRecord, vehicles []domain.Vehicle) Table {
	labels := vehicleLabels(vehicles)

	var hasLiters, hasStation, hasProvider bool
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		row := Row{
			colDate:        format.Date(r.Date),
			colVehicle:     labels[r.VehicleID],
			colType:        string(r.Kind),
			colDescription: r.Description(),
			colCost:        fixed2(r.Cost),
		}
		if r.Fuel != nil {
			row[colLiters] = fixed1(r.Fuel.Liters)
			hasLiters = true
			if r.Fuel.Station != "" {
				row[colStation] = r.Fuel.Station
				hasStation = true
			}
		}
		if r.Maintenance != nil && r.Maintenance.ServiceProvider != "" {
			row[colServiceProvider] = r.Maintenance.ServiceProvider
			hasProvider = true
		}
		rows = append(rows, row)
	}

	columns := []string{colDate, colVehicle, colType, colDescription, colCost}
	if hasLiters {
		columns = append(columns, colLiters)
	}
	if hasStation {
		columns = append(columns, colStation)
	}
	if hasProvider {
		columns = append(columns, colServiceProvider)
	}
	return Table{Columns: columns, Rows: rows}
}

// FormatVehicleBreakdown maps the per-vehicle rollup into export rows,
// resolving registry fields through the vehicle list.
func FormatVehicleBreakdown(breakdown []domain.VehicleBreakdown, vehicles []domain.Vehicle) Table {
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	rows := make([]Row, 0, len(breakdown))
	for _, b := range breakdown {
		v := byID[b.VehicleID]
		rows = append(rows, Row{
			colRegNumber:       v.RegNumber,
			colMake:            v.Make,
			colModel:           v.Model,
			colYear:            yearCell(v.Year),
			colTotalCost:       fixed2(b.TotalCost),
			colFuelCost:        fixed2(b.FuelCost),
			colMaintenanceCost: fixed2(b.MaintenanceCost),
			colFuelConsumed:    fixed1(b.Liters),
			colAvgFuelCost:     fixed2(b.AverageFuelCostPerLiter),
			colFuelRecords:     strconv.Itoa(b.FuelRecordCount),
			colMaintRecords:    strconv.Itoa(b.MaintenanceRecordCount),
		})
	}

	return Table{
		Columns: []string{
			colRegNumber, colMake, colModel, colYear,
			colTotalCost, colFuelCost, colMaintenanceCost,
			colFuelConsumed, colAvgFuelCost,
			colFuelRecords, colMaintRecords,
		},
		Rows: rows,
	}
}

// FormatMonthlyTrends maps monthly summaries into export rows.
func FormatMonthlyTrends(months []domain.MonthlySummary) Table {
	rows := make([]Row, 0, len(months))
	for _, m := range months {
		rows = append(rows, Row{
			colMonth:           m.Label,
			colFuelCost:        fixed2(m.FuelCost),
			colMaintenanceCost: fixed2(m.MaintenanceCost),
			colTotalCost:       fixed2(m.TotalCost),
			colFuelConsumed:    fixed1(m.Liters),
			colFuelRecords:     strconv.Itoa(m.FuelRecordCount),
			colMaintRecords:    strconv.Itoa(m.MaintenanceRecordCount),
		})
	}

	return Table{
		Columns: []string{
			colMonth, colFuelCost, colMaintenanceCost, colTotalCost,
			colFuelConsumed, colFuelRecords, colMaintRecords,
		},
		Rows: rows,
	}
}

// FormatTopExpenses maps ranked expense entries into export rows. Entries
// are already flattened, so only the base financial columns apply.
func FormatTopExpenses(entries []domain.ExpenseEntry) Table {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			colDate:        format.Date(e.Date),
			colVehicle:     e.VehicleLabel,
			colType:        string(e.Kind),
			colDescription: e.Description,
			colCost:        fixed2(e.Cost),
		})
	}
	return Table{
		Columns: []string{colDate, colVehicle, colType, colDescription, colCost},
		Rows:    rows,
	}
}

// ReportInfo heads a fleet report with its generation time and window.
type ReportInfo struct {
	GeneratedAt string       `json:"generatedAt"`
	Period      ReportPeriod `json:"period"`
}

type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FleetReport is the nested JSON export artifact: the full snapshot rendered
// into labeled rows.
type FleetReport struct {
	ReportInfo       ReportInfo `json:"reportInfo"`
	Overview         Row        `json:"overview"`
	MonthlyTrends    []Row      `json:"monthlyTrends"`
	VehicleBreakdown []Row      `json:"vehicleBreakdown"`
	TopExpenses      []Row      `json:"topExpenses"`
}

// BuildFleetReport wraps every section of a snapshot into the exportable
// fleet report. generatedAt is injected so exports are reproducible.
func BuildFleetReport(snapshot domain.AnalyticsSnapshot, vehicles []domain.Vehicle, generatedAt time.Time) FleetReport {
	o := snapshot.Overview
	return FleetReport{
		ReportInfo: ReportInfo{
			GeneratedAt: format.DateTime(generatedAt),
			Period: ReportPeriod{
				From: format.Date(snapshot.Range.Start),
				To:   format.Date(snapshot.Range.End),
			},
		},
		Overview: Row{
			colTotalCost:       format.KES(o.TotalCost),
			colFuelCost:        format.KES(o.TotalFuelCost),
			colMaintenanceCost: format.KES(o.TotalMaintenanceCost),
			colFuelConsumed:    fixed1(o.TotalLiters),
			colAvgFuelCost:     format.KES(o.AverageFuelCostPerLiter),
			colActiveVehicles:  strconv.Itoa(o.ActiveVehicles),
		},
		MonthlyTrends:    FormatMonthlyTrends(snapshot.Monthly).Rows,
		VehicleBreakdown: FormatVehicleBreakdown(snapshot.VehicleBreakdown, vehicles).Rows,
		TopExpenses:      FormatTopExpenses(snapshot.TopExpenses).Rows,
	}
}

func vehicleLabels(vehicles []domain.Vehicle) map[string]string {
	labels := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		labels[v.ID] = v.DisplayName()
	}
	return labels
}

func fixed2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func fixed1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func yearCell(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
