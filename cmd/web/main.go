package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/server"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/config"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/fleet"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/pricing"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/reports"
	fleetmongo "github.com/kisurizzz/fleet-manager-sub001/pkg/store/mongo"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the fleet manager web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional, env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := fleetmongo.NewStore(ctx, fleetmongo.Settings{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to close document store")
		}
	}()

	fleetSvc := fleet.NewService(store)
	pricingSvc := pricing.NewService(store)
	reportSvc := reports.NewService(fleetSvc)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("db", cfg.Mongo.Database).Msgf("starting server on %s", addr)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Fleet:   fleetSvc,
			Pricing: pricingSvc,
			Reports: reportSvc,
		},
	})

	return api.Start()
}
