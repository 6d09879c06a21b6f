package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kisurizzz/fleet-manager-sub001/pkg/export"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/format"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/models/domain"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/config"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/fleet"
	"github.com/kisurizzz/fleet-manager-sub001/pkg/services/reports"
	fleetmongo "github.com/kisurizzz/fleet-manager-sub001/pkg/store/mongo"
)

type reportCmd struct {
	cfgPath      string
	period       string
	from         string
	to           string
	exportFormat string
	table        string
	outDir       string
}

func main() {
	rc := &reportCmd{}

	rootCmd := &cobra.Command{
		Use:   "fleetctl",
		Short: "Fleet manager command line tools",
	}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a fleet report and export it to a file",
		RunE:  rc.run,
	}
	cmd.Flags().StringVarP(&rc.cfgPath, "config", "c", "", "Path to the config file")
	cmd.Flags().StringVar(&rc.period, "period", "month", "Report period: month, quarter, year, or custom")
	cmd.Flags().StringVar(&rc.from, "from", "", "Custom range start (dd-MM-yyyy)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Custom range end (dd-MM-yyyy)")
	cmd.Flags().StringVar(&rc.exportFormat, "format", "json", "Export format: csv or json")
	cmd.Flags().StringVar(&rc.table, "table", reports.TableMonthly, "CSV table: records, vehicles, or monthly")
	cmd.Flags().StringVarP(&rc.outDir, "out", "o", ".", "Directory to write the artifact into")
	rootCmd.AddCommand(cmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (rc *reportCmd) run(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine; flags and environment variables still apply.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(logger.WithContext(cmd.Context()), 60*time.Second)
	defer cancel()

	window, err := rc.resolveRange()
	if err != nil {
		return err
	}

	cfg, err := config.Load(rc.cfgPath)
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

	reportSvc := reports.NewService(fleet.NewService(store))

	var artifact export.Artifact
	switch rc.exportFormat {
	case "json":
		artifact, err = reportSvc.ExportJSON(ctx, window, time.Now())
	case "csv":
		artifact, err = reportSvc.ExportCSV(ctx, window, rc.table, time.Now())
	default:
		return fmt.Errorf("unknown export format %q", rc.exportFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	sink := export.FileSink{Dir: rc.outDir}
	if err := sink.Write(ctx, artifact); err != nil {
		return err
	}

	logger.Info().
		Str("file", artifact.Filename).
		Str("from", format.Date(window.Start)).
		Str("to", format.Date(window.End)).
		Msg("report exported")
	return nil
}

func (rc *reportCmd) resolveRange() (domain.DateRange, error) {
	switch domain.Period(rc.period) {
	case domain.PeriodMonth, domain.PeriodQuarter, domain.PeriodYear:
		return domain.RangeForPeriod(domain.Period(rc.period), time.Now()), nil
	case domain.PeriodCustom:
		start, err := format.ParseDate(rc.from)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --from date %q", rc.from)
		}
		end, err := format.ParseDate(rc.to)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --to date %q", rc.to)
		}
		return domain.DateRange{Start: start, End: end.AddDate(0, 0, 1).Add(-time.Nanosecond)}, nil
	default:
		return domain.DateRange{}, fmt.Errorf("unknown period %q", rc.period)
	}
}
