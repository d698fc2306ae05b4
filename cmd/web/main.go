package main

import (
	"fmt"
	"net"
	"os"

	handlers "github.com/de-tools/data-reports/pkg/handlers/report"
	"github.com/de-tools/data-reports/pkg/format"
	"github.com/de-tools/data-reports/pkg/server"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/de-tools/data-reports/pkg/store/duckdb"
	duckdbreservation "github.com/de-tools/data-reports/pkg/store/duckdb/reservation"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for data reports",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the reports config file (defaults and REPORTS_* environment when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	locale, err := format.NewLocale(cfg.Currency, cfg.WeekdayLocale)
	if err != nil {
		return err
	}

	registry := report.NewRegistry()
	if err := report.RegisterBuiltins(registry); err != nil {
		return fmt.Errorf("failed to register reports: %w", err)
	}

	settings := handlers.Settings{
		Inputs:    cfg.Inputs,
		Locale:    locale,
		Threshold: cfg.LongThreshold,
	}

	if cfg.Database != "" {
		db, err := duckdb.NewDB(duckdb.Settings{
			DbPath: cfg.Database,
		})
		if err != nil {
			return fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer db.Close()

		store, err := duckdbreservation.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create reservation store: %w", err)
		}
		settings.Reservations = store
		logger.Info().Msgf("Reservation reports read from the archive at `%s`", cfg.Database)
	}

	if cfgPath != "" {
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}
	for _, def := range registry.List() {
		logger.Debug().Msgf("Report: `%s`, Dataset: `%s`", def.Name, def.Dataset)
	}

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = cfg.Server.Host
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: registry,
			Settings: settings,
		},
	})

	return api.Start()
}
