package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	fleethandlers "github.com/kisurizzz/fleet-manager-sub001/pkg/handlers/fleet"
	pricinghandlers "github.com/kisurizzz/fleet-manager-sub001/pkg/handlers/pricing"
	reporthandlers "github.com/kisurizzz/fleet-manager-sub001/pkg/handlers/reports"
	fleetmiddleware "github.com/kisurizzz/fleet-manager-sub001/pkg/server/middleware"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/fleet"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/pricing"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/reports"
)

type Dependencies struct {
	Fleet   fleet.Service
	Pricing pricing.Service
	Reports reports.Service
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the dashboard API onto a chi router.
func ConfigureRouter(config Config) *chi.Mux {
	fleetHandler := fleethandlers.NewHandler(config.Dependencies.Fleet)
	pricingHandler := pricinghandlers.NewHandler(config.Dependencies.Pricing)
	reportHandler := reporthandlers.NewHandler(config.Dependencies.Reports)

	router := chi.NewRouter()
	router.Use(fleetmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicles", fleetHandler.ListVehicles)
		r.Post("/vehicles", fleetHandler.AddVehicle)
		r.Get("/vehicles/{vehicle}/fuel", fleetHandler.ListFuelRecords)
		r.Post("/vehicles/{vehicle}/fuel", fleetHandler.AddFuelRecord)
		r.Get("/vehicles/{vehicle}/maintenance", fleetHandler.ListMaintenanceRecords)
		r.Post("/vehicles/{vehicle}/maintenance", fleetHandler.AddMaintenanceRecord)

		r.Get("/prices/current", pricingHandler.GetCurrentPrice)
		r.Post("/prices", pricingHandler.SetPrice)
		r.Get("/prices/history", pricingHandler.GetPriceHistory)

		r.Get("/reports", reportHandler.GetReport)
		r.Get("/reports/export", reportHandler.ExportReport)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
