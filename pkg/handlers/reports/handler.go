package reports

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/adapters"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/export"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	reportservice "github.com/kisurizzz/fleet-manager-sub001/pkg/services/reports"
)

type Handler struct {
	reports reportservice.Service
	now     func() time.Time
}

func NewHandler(reports reportservice.Service) *Handler {
	return &Handler{reports: reports, now: time.Now}
}

// GetReport serves the analytics snapshot for a period preset or a custom
// from/to window.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	window, err := h.parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := h.reports.Snapshot(ctx, window)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate report")
		http.Error(w, "failed to load report data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapSnapshotDomainToApi(snapshot)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

// ExportReport streams a report artifact. format=csv takes a table query
// param (records, vehicles, monthly); format=json produces the full fleet
// report.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	window, err := h.parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var artifact export.Artifact
	switch exportFormat := r.URL.Query().Get("format"); exportFormat {
	case "", "json":
		artifact, err = h.reports.ExportJSON(ctx, window, h.now())
	case "csv":
		table := r.URL.Query().Get("table")
		if table == "" {
			table = reportservice.TableMonthly
		}
		artifact, err = h.reports.ExportCSV(ctx, window, table, h.now())
	default:
		http.Error(w, fmt.Sprintf("unknown export format %q", exportFormat), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to export report")
		http.Error(w, "failed to export report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if _, err := w.Write(artifact.Data); err != nil {
		logger.Error().Err(err).Str("artifact", artifact.Filename).Msg("failed to stream export")
	}
}

// parseRange resolves the period preset, or a custom from/to pair in
// dd-MM-yyyy. An inverted custom range is passed through; it aggregates to
// an empty snapshot rather than failing.
func (h *Handler) parseRange(r *http.Request) (domain.DateRange, error) {
	period := r.URL.Query().Get("period")
	switch domain.Period(period) {
	case domain.PeriodMonth, domain.PeriodQuarter, domain.PeriodYear:
		return domain.RangeForPeriod(domain.Period(period), h.now()), nil
	case domain.PeriodCustom, domain.Period(""):
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" && to == "" {
			return domain.RangeForPeriod(domain.PeriodMonth, h.now()), nil
		}
		start, err := format.ParseDate(from)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid from date %q", from)
		}
		end, err := format.ParseDate(to)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid to date %q", to)
		}
		return domain.DateRange{Start: start, End: end.AddDate(0, 0, 1).Add(-time.Nanosecond)}, nil
	default:
		return domain.DateRange{}, fmt.Errorf("unknown period %q", period)
	}
}
