package api

type Band struct {
	Length int     `json:"length"`
	Mean   float64 `json:"mean"`
	P2_5   float64 `json:"p2_5"`
	P5     float64 `json:"p5"`
	P95    float64 `json:"p95"`
	P97_5  float64 `json:"p97_5"`
}

type Trend struct {
	Length int      `json:"length"`
	Slope  float64  `json:"slope_per_decade"`
	CILow  *float64 `json:"ci_low,omitempty"`
	CIHigh *float64 `json:"ci_high,omitempty"`
}

type Comparison struct {
	Length         int    `json:"length"`
	Classification string `json:"classification"`
	CIOverlaps     bool   `json:"ci_overlaps"`
}

type ComparisonReport struct {
	Title       string            `json:"title"`
	EndYear     int               `json:"end_year"`
	MinLength   int               `json:"min_length"`
	MaxSpan     int               `json:"max_span"`
	ModelCount  int               `json:"model_count"`
	Bands       []Band            `json:"bands"`
	Observed    []Trend           `json:"observed"`
	Comparisons []Comparison      `json:"comparisons"`
	Skipped     map[string]string `json:"skipped_models,omitempty"`
}
