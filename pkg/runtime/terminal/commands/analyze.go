package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/trend-atlas/pkg/render/chart"
	"github.com/de-tools/trend-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/trend-atlas/pkg/services/analysis"
	"github.com/de-tools/trend-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	configPath string
	endYear    int
	span       int
	chartPath  string
	logger     zerolog.Logger
	reporter   *export.Reporter
}

// NewAnalyzeCmd runs a single comparison anchored at one end year.
func NewAnalyzeCmd(logger zerolog.Logger, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{logger: logger, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare observed decadal trends against the model ensemble for one end year",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the scenario configuration file")
	cmd.Flags().IntVar(&ac.endYear, "end-year", 0, "Fixed anchor year for all trailing windows")
	cmd.Flags().IntVar(&ac.span, "span", 0, "Longest window length (0 = full series)")
	cmd.Flags().StringVar(&ac.chartPath, "chart", "", "Optional PNG output path for the comparison figure")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("end-year")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}

	observed, models, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	ctx := ac.logger.WithContext(cmd.Context())
	report, err := analysis.Run(ctx, observed, models, analysis.Params{
		EndYear:          ac.endYear,
		MaxSpan:          ac.span,
		SkipFailedModels: cfg.SkipFailedModels,
	})
	if err != nil {
		return fmt.Errorf("run for end year %d failed: %w", ac.endYear, err)
	}

	if err := ac.reporter.Handle(report); err != nil {
		return err
	}

	if ac.chartPath != "" {
		f, err := os.Create(ac.chartPath)
		if err != nil {
			return fmt.Errorf("creating chart file: %w", err)
		}
		defer f.Close()
		if err := chart.Render(f, report); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		ac.logger.Info().Str("path", ac.chartPath).Msg("chart written")
	}
	return nil
}
