package domain

// RunSpec carries the parameters of one analysis run. End year and
// span are passed explicitly everywhere; there is no mutable session
// state shared between runs.
type RunSpec struct {
	EndYear   int
	MinLength int
	MaxSpan   int
}

// ComparisonReport is the complete output of one run.
type ComparisonReport struct {
	Title       string
	Run         RunSpec
	ModelCount  int
	Bands       []EnsembleBand    // descending by length
	Observed    []TrendPoint      // descending by length
	Comparisons []ComparisonPoint // descending by length
	Skipped     map[SeriesID]string
}

// ReportSection is a logical section of the rendered report.
type ReportSection struct {
	Title   string
	Summary map[string]any
	Rows    []ReportRow
}

// ReportRow is one table row within a section.
type ReportRow struct {
	Name        string
	Value       any
	Unit        string
	Description string
}
