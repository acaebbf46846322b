package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/trend-atlas/pkg/render/chart"
	"github.com/de-tools/trend-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/trend-atlas/pkg/services/analysis"
	"github.com/de-tools/trend-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ScenariosCmd struct {
	configPath string
	logger     zerolog.Logger
	reporter   *export.Reporter
}

// NewScenariosCmd runs every configured end-year scenario in turn.
// Each scenario is an independent run; the inputs are loaded once and
// shared read-only.
func NewScenariosCmd(logger zerolog.Logger, reporter *export.Reporter) *cobra.Command {
	sc := &ScenariosCmd{logger: logger, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run all configured end-year scenarios",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the scenario configuration file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (sc *ScenariosCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return err
	}

	observed, models, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	if cfg.ChartDir != "" {
		if err := os.MkdirAll(cfg.ChartDir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}

	ctx := sc.logger.WithContext(cmd.Context())
	for _, scenario := range cfg.Scenarios {
		report, err := analysis.Run(ctx, observed, models, analysis.Params{
			EndYear:          scenario.EndYear,
			MaxSpan:          scenario.Span,
			SkipFailedModels: cfg.SkipFailedModels,
		})
		if err != nil {
			return fmt.Errorf("scenario %d failed: %w", scenario.EndYear, err)
		}

		if err := sc.reporter.Handle(report); err != nil {
			return err
		}

		if cfg.ChartDir == "" {
			continue
		}
		path := filepath.Join(cfg.ChartDir, fmt.Sprintf("trends_%d.png", scenario.EndYear))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating chart file: %w", err)
		}
		if err := chart.Render(f, report); err != nil {
			f.Close()
			return fmt.Errorf("rendering chart for %d: %w", scenario.EndYear, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		sc.logger.Info().Str("path", path).Msg("chart written")
	}
	return nil
}
