package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/trend-atlas/pkg/adapters"
	"github.com/de-tools/trend-atlas/pkg/handlers/comparison"
	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/server"
	"github.com/de-tools/trend-atlas/pkg/services/config"
	"github.com/de-tools/trend-atlas/pkg/store/csvsource"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve trend comparison runs over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "scenarios.yaml",
		"Path to the scenario configuration file")

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

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario config: %w", err)
	}

	ensRows, err := csvsource.ReadEnsembleFile(cfg.EnsemblePath)
	if err != nil {
		return fmt.Errorf("failed to load ensemble: %w", err)
	}
	obsRows, err := csvsource.ReadObservedFile(cfg.ObservedPath)
	if err != nil {
		return fmt.Errorf("failed to load observed series: %w", err)
	}

	models := adapters.MapEnsembleRowsToDomain(ensRows)
	observed := adapters.MapObservedRowsToDomain(domain.SeriesID(cfg.ObservedSeriesID), obsRows)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().
		Int("models", len(models)).
		Int("observed_years", len(observed.Observations)).
		Msg("inputs loaded")

	span := 0
	if len(cfg.Scenarios) > 0 {
		span = cfg.Scenarios[0].Span
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Comparison: comparison.NewHandler(observed, models, span, cfg.SkipFailedModels),
		},
	})

	return webAPI.Start()
}
