package domain

// TrendPoint is the fitted per-decade slope over one trailing window.
// CILow/CIHigh hold the two-sided 95% interval for the slope and are
// only populated when the builder is asked for confidence intervals
// (the observational series in the reference scenarios).
type TrendPoint struct {
	SeriesID SeriesID
	Length   int
	Slope    float64 // units per decade
	CILow    float64
	CIHigh   float64
	HasCI    bool
}

// EnsembleBand summarizes the ensemble slope distribution at one
// window length.
type EnsembleBand struct {
	Length int
	Mean   float64
	P2_5   float64
	P5     float64
	P95    float64
	P97_5  float64
}

// Classification places an observed slope relative to the ensemble
// percentile envelope. It is a percentile rank of point estimates,
// not a hypothesis test.
type Classification string

const (
	ClassConsistent Classification = "consistent"
	ClassBelow95    Classification = "below_95"
	ClassBelow97_5  Classification = "below_97_5"
)

// ComparisonPoint pairs the observed trend at one length with the
// ensemble band and the derived classification. CIOverlaps is the
// separate, statistically meaningful interval-overlap check.
type ComparisonPoint struct {
	Length     int
	Observed   TrendPoint
	Band       EnsembleBand
	Class      Classification
	CIOverlaps bool
}
