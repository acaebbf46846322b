package adapters

import (
	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/models/store"
)

func MapEnsembleRowsToDomain(rows []store.EnsembleRow) domain.Ensemble {
	ens := domain.Ensemble{}
	for _, r := range rows {
		id := domain.SeriesID(r.Model)
		ens[id] = append(ens[id], domain.Observation{Year: r.Year, Value: r.Value})
	}
	return ens
}

// MapObservedRowsToDomain averages each row's values into one annual
// mean, which is how the reference observational source (monthly
// anomaly columns) becomes an annual series.
func MapObservedRowsToDomain(id domain.SeriesID, rows []store.ObservedRow) domain.Series {
	obs := make([]domain.Observation, 0, len(rows))
	for _, r := range rows {
		if len(r.Values) == 0 {
			continue
		}
		sum := 0.0
		for _, v := range r.Values {
			sum += v
		}
		obs = append(obs, domain.Observation{Year: r.Year, Value: sum / float64(len(r.Values))})
	}
	return domain.Series{ID: id, Observations: obs}
}
