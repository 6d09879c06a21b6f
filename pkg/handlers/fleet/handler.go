package fleet

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/adapters"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/api"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	fleetservice "github.com/kisurizzz/fleet-manager-sub001/pkg/services/fleet"
)

type Handler struct {
	fleet fleetservice.Service
}

func NewHandler(fleet fleetservice.Service) *Handler {
	return &Handler{fleet: fleet}
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	vehicles, err := h.fleet.Vehicles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load vehicles")
		http.Error(w, "failed to load vehicles", http.StatusInternalServerError)
		return
	}

	response := make([]api.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, adapters.MapVehicleDomainToApi(v))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.RegNumber == "" {
		http.Error(w, "regNumber is required", http.StatusBadRequest)
		return
	}

	vehicle, err := h.fleet.AddVehicle(ctx, domain.Vehicle{
		RegNumber: req.RegNumber,
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
	})
	if err != nil {
		logger.Error().Err(err).Str("reg", req.RegNumber).Msg("failed to add vehicle")
		http.Error(w, "failed to add vehicle", http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, logger, http.StatusCreated, adapters.MapVehicleDomainToApi(vehicle))
}

func (h *Handler) ListFuelRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	vehicleID := chi.URLParam(r, "vehicle")

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.fleet.FuelRecords(ctx, vehicleID, window)
	if err != nil {
		logger.Error().Err(err).Str("vehicle", vehicleID).Msg("failed to load fuel records")
		http.Error(w, "failed to load fuel records", http.StatusInternalServerError)
		return
	}

	response := make([]api.FuelRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapFuelRecordDomainToApi(rec))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) AddFuelRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	vehicleID := chi.URLParam(r, "vehicle")

	var req api.CreateFuelRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Cost < 0 || req.Liters < 0 {
		http.Error(w, "cost and liters must be non-negative", http.StatusBadRequest)
		return
	}

	record, err := h.fleet.AddFuelRecord(ctx, domain.FinancialRecord{
		VehicleID: vehicleID,
		Date:      req.Date,
		Cost:      req.Cost,
		Kind:      domain.RecordKindFuel,
		Fuel: &domain.FuelDetails{
			Liters:  req.Liters,
			Station: req.Station,
			Notes:   req.Notes,
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("vehicle", vehicleID).Msg("failed to add fuel record")
		http.Error(w, "failed to add fuel record", http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, logger, http.StatusCreated, adapters.MapFuelRecordDomainToApi(record))
}

func (h *Handler) ListMaintenanceRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	vehicleID := chi.URLParam(r, "vehicle")

	window, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.fleet.MaintenanceRecords(ctx, vehicleID, window)
	if err != nil {
		logger.Error().Err(err).Str("vehicle", vehicleID).Msg("failed to load maintenance records")
		http.Error(w, "failed to load maintenance records", http.StatusInternalServerError)
		return
	}

	response := make([]api.MaintenanceRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapMaintenanceRecordDomainToApi(rec))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) AddMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	vehicleID := chi.URLParam(r, "vehicle")

	var req api.CreateMaintenanceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Cost < 0 {
		http.Error(w, "cost must be non-negative", http.StatusBadRequest)
		return
	}

	record, err := h.fleet.AddMaintenanceRecord(ctx, domain.FinancialRecord{
		VehicleID: vehicleID,
		Date:      req.Date,
		Cost:      req.Cost,
		Kind:      domain.RecordKindMaintenance,
		Maintenance: &domain.MaintenanceDetails{
			Description:     req.Description,
			ServiceProvider: req.ServiceProvider,
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("vehicle", vehicleID).Msg("failed to add maintenance record")
		http.Error(w, "failed to add maintenance record", http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, logger, http.StatusCreated, adapters.MapMaintenanceRecordDomainToApi(record))
}

// parseWindow reads optional from/to query params (dd-MM-yyyy). Defaults
// cover the whole record history.
func parseWindow(r *http.Request) (domain.DateRange, error) {
	from, err := parseDateParam(r, "from", time.Time{})
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := parseDateParam(r, "to", time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{Start: from, End: endOfDay(to)}, nil
}

func parseDateParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	return format.ParseDate(value)
}

func endOfDay(ts time.Time) time.Time {
	return ts.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	writeJSONStatus(w, logger, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, logger *zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
