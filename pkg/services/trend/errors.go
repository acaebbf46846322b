package trend

import (
	"fmt"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
)

// InsufficientDataError means the series does not reach the minimum
// window length at the requested end year.
type InsufficientDataError struct {
	SeriesID  domain.SeriesID
	EndYear   int
	Available int
	Minimum   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("series %q: %d contiguous years at end year %d, need at least %d",
		e.SeriesID, e.Available, e.EndYear, e.Minimum)
}

// DegenerateFitError means the design matrix for a window was singular
// or the fit produced a non-finite coefficient. With two parameters and
// at least ten distinct years this is not expected; it is checked so a
// broken input fails loudly instead of yielding NaN.
type DegenerateFitError struct {
	SeriesID domain.SeriesID
	Length   int
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("series %q: degenerate regression at window length %d", e.SeriesID, e.Length)
}
