package commands

import (
	"fmt"

	"github.com/de-tools/trend-atlas/pkg/adapters"
	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/services/config"
	"github.com/de-tools/trend-atlas/pkg/store/csvsource"
)

func loadInputs(cfg *config.Config) (domain.Series, domain.Ensemble, error) {
	ensRows, err := csvsource.ReadEnsembleFile(cfg.EnsemblePath)
	if err != nil {
		return domain.Series{}, nil, fmt.Errorf("loading ensemble: %w", err)
	}
	obsRows, err := csvsource.ReadObservedFile(cfg.ObservedPath)
	if err != nil {
		return domain.Series{}, nil, fmt.Errorf("loading observed series: %w", err)
	}

	observed := adapters.MapObservedRowsToDomain(domain.SeriesID(cfg.ObservedSeriesID), obsRows)
	return observed, adapters.MapEnsembleRowsToDomain(ensRows), nil
}
