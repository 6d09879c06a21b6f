package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/export"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Snapshot(ctx context.Context, r domain.DateRange) (domain.AnalyticsSnapshot, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.AnalyticsSnapshot), args.Error(1)
}

func (m *mockReportService) ExportCSV(ctx context.Context, r domain.DateRange, table string, now time.Time) (export.Artifact, error) {
	args := m.Called(ctx, r, table, now)
	return args.Get(0).(export.Artifact), args.Error(1)
}

func (m *mockReportService) ExportJSON(ctx context.Context, r domain.DateRange, now time.Time) (export.Artifact, error) {
	args := m.Called(ctx, r, now)
	return args.Get(0).(export.Artifact), args.Error(1)
}

var handlerNow = time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

func newTestHandler(svc *mockReportService) *Handler {
	h := NewHandler(svc)
	h.now = func() time.Time { return handlerNow }
	return h
}

func TestGetReport(t *testing.T) {
	window := domain.RangeForPeriod(domain.PeriodMonth, handlerNow)
	snapshot := domain.AnalyticsSnapshot{
		Range:    window,
		Overview: domain.Overview{TotalCost: 4700, ActiveVehicles: 2},
	}
	svc := new(mockReportService)
	svc.On("Snapshot", mock.Anything, window).Return(snapshot, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?period=month", nil)
	rec := httptest.NewRecorder()
	h.GetReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		From     string `json:"from"`
		To       string `json:"to"`
		Overview struct {
			TotalCost      float64 `json:"totalCost"`
			ActiveVehicles int     `json:"activeVehicles"`
		} `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "01-03-2024", body.From)
	assert.Equal(t, "31-03-2024", body.To)
	assert.Equal(t, 4700.0, body.Overview.TotalCost)
	assert.Equal(t, 2, body.Overview.ActiveVehicles)
	svc.AssertExpectations(t)
}

func TestGetReportCustomRange(t *testing.T) {
	want := domain.DateRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
	svc := new(mockReportService)
	svc.On("Snapshot", mock.Anything, want).Return(domain.AnalyticsSnapshot{Range: want}, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?period=custom&from=01-01-2024&to=31-01-2024", nil)
	rec := httptest.NewRecorder()
	h.GetReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetReportDefaultsToCurrentMonth(t *testing.T) {
	window := domain.RangeForPeriod(domain.PeriodMonth, handlerNow)
	svc := new(mockReportService)
	svc.On("Snapshot", mock.Anything, window).Return(domain.AnalyticsSnapshot{Range: window}, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	rec := httptest.NewRecorder()
	h.GetReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetReportBadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown period", target: "/api/v1/reports?period=decade"},
		{name: "malformed from date", target: "/api/v1/reports?from=2024-01-01&to=31-01-2024"},
		{name: "missing to date", target: "/api/v1/reports?from=01-01-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockReportService)
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.GetReport(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything)
		})
	}
}

func TestGetReportServiceFailure(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Snapshot", mock.Anything, mock.Anything).
		Return(domain.AnalyticsSnapshot{}, errors.New("store unavailable"))
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?period=month", nil)
	rec := httptest.NewRecorder()
	h.GetReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExportReportJSON(t *testing.T) {
	window := domain.RangeForPeriod(domain.PeriodQuarter, handlerNow)
	artifact := export.Artifact{
		Filename: "fleet-report_2024-03-10_14-00.json",
		MIMEType: export.MIMETypeJSON,
		Data:     []byte(`{"reportInfo":{}}`),
	}
	svc := new(mockReportService)
	svc.On("ExportJSON", mock.Anything, window, handlerNow).Return(artifact, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?period=quarter", nil)
	rec := httptest.NewRecorder()
	h.ExportReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="fleet-report_2024-03-10_14-00.json"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, artifact.Data, rec.Body.Bytes())
	svc.AssertExpectations(t)
}

func TestExportReportCSVDefaultsToMonthlyTable(t *testing.T) {
	window := domain.RangeForPeriod(domain.PeriodMonth, handlerNow)
	artifact := export.Artifact{
		Filename: "monthly-trends_2024-03-10_14-00.csv",
		MIMEType: export.MIMETypeCSV,
		Data:     []byte("Month,Total Cost\n"),
	}
	svc := new(mockReportService)
	svc.On("ExportCSV", mock.Anything, window, "monthly", handlerNow).Return(artifact, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?period=month&format=csv", nil)
	rec := httptest.NewRecorder()
	h.ExportReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="monthly-trends_2024-03-10_14-00.csv"`, rec.Header().Get("Content-Disposition"))
	svc.AssertExpectations(t)
}

func TestExportReportCSVTableParam(t *testing.T) {
	window := domain.RangeForPeriod(domain.PeriodMonth, handlerNow)
	artifact := export.Artifact{
		Filename: "vehicle-breakdown_2024-03-10_14-00.csv",
		MIMEType: export.MIMETypeCSV,
		Data:     []byte("Registration Number\n"),
	}
	svc := new(mockReportService)
	svc.On("ExportCSV", mock.Anything, window, "vehicles", handlerNow).Return(artifact, nil)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?period=month&format=csv&table=vehicles", nil)
	rec := httptest.NewRecorder()
	h.ExportReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestExportReportUnknownFormat(t *testing.T) {
	svc := new(mockReportService)
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?period=month&format=xlsx", nil)
	rec := httptest.NewRecorder()
	h.ExportReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ExportCSV", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "ExportJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportReportServiceFailure(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ExportJSON", mock.Anything, mock.Anything, handlerNow).
		Return(export.Artifact{}, errors.New("store unavailable"))
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?period=year", nil)
	rec := httptest.NewRecorder()
	h.ExportReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
