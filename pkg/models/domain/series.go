package domain

// SeriesID identifies either the observational series or a single
// ensemble member. It is an opaque grouping label with no effect on
// the math.
type SeriesID string

// Observation is one annual value of a series.
type Observation struct {
	Year  int
	Value float64
}

// Series is a chronologically ordered annual time series. Order is
// assumed ascending on input but consumers must not depend on it;
// the trend builder re-derives order internally.
type Series struct {
	ID           SeriesID
	Observations []Observation
}

// Ensemble maps each model to its annual series.
type Ensemble map[SeriesID][]Observation
