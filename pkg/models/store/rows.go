package store

// EnsembleRow is one raw row of the ensemble CSV in long format:
// model, year, value.
type EnsembleRow struct {
	Model string
	Year  int
	Value float64
}

// ObservedRow is one raw row of the observational CSV: a year plus
// either a single annual value or twelve monthly anomaly values that
// still need averaging.
type ObservedRow struct {
	Year   int
	Values []float64
}
