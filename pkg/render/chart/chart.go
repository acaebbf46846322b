// Package chart renders the comparison figure: ensemble percentile
// envelope, ensemble mean, and the observed trend per window start
// year, with observed points colored by their classification.
package chart

import (
	"fmt"
	"io"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var classColors = map[domain.Classification]drawing.Color{
	domain.ClassConsistent: chart.ColorBlue,
	domain.ClassBelow95:    {R: 255, G: 165, B: 0, A: 255},
	domain.ClassBelow97_5:  {R: 200, G: 30, B: 30, A: 255},
}

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: width,
	}
}

func dotStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Render writes a PNG of the report to w. The x axis is the window
// start year (endYear-length+1), so longer windows sit further left.
func Render(w io.Writer, report *domain.ComparisonReport) error {
	if len(report.Bands) == 0 {
		return fmt.Errorf("no ensemble bands to render")
	}

	endYear := report.Run.EndYear
	startYear := func(length int) float64 { return float64(endYear - length + 1) }

	series := make([]chart.Series, 0, 8)

	bandXs := make([]float64, len(report.Bands))
	means := make([]float64, len(report.Bands))
	p2_5s := make([]float64, len(report.Bands))
	p5s := make([]float64, len(report.Bands))
	p95s := make([]float64, len(report.Bands))
	p97_5s := make([]float64, len(report.Bands))
	for i, b := range report.Bands {
		bandXs[i] = startYear(b.Length)
		means[i] = b.Mean
		p2_5s[i] = b.P2_5
		p5s[i] = b.P5
		p95s[i] = b.P95
		p97_5s[i] = b.P97_5
	}
	gray := chart.ColorAlternateGray
	series = append(series,
		chart.ContinuousSeries{Name: "Ensemble mean", XValues: bandXs, YValues: means, Style: lineStyle(chart.ColorBlack, 2)},
		chart.ContinuousSeries{Name: "Ensemble 2.5-97.5%", XValues: bandXs, YValues: p2_5s, Style: lineStyle(gray, 1)},
		chart.ContinuousSeries{XValues: bandXs, YValues: p97_5s, Style: lineStyle(gray, 1)},
		chart.ContinuousSeries{Name: "Ensemble 5-95%", XValues: bandXs, YValues: p5s, Style: lineStyle(gray, 2)},
		chart.ContinuousSeries{XValues: bandXs, YValues: p95s, Style: lineStyle(gray, 2)},
	)

	if hasCI(report.Observed) {
		xs := make([]float64, 0, len(report.Observed))
		lows := make([]float64, 0, len(report.Observed))
		highs := make([]float64, 0, len(report.Observed))
		for _, p := range report.Observed {
			if !p.HasCI {
				continue
			}
			xs = append(xs, startYear(p.Length))
			lows = append(lows, p.CILow)
			highs = append(highs, p.CIHigh)
		}
		if len(xs) > 1 {
			ciStyle := chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1, StrokeDashArray: []float64{4, 3}}
			series = append(series,
				chart.ContinuousSeries{Name: "Observed 95% CI", XValues: xs, YValues: lows, Style: ciStyle},
				chart.ContinuousSeries{XValues: xs, YValues: highs, Style: ciStyle},
			)
		}
	}

	for _, class := range []domain.Classification{domain.ClassConsistent, domain.ClassBelow95, domain.ClassBelow97_5} {
		xs := make([]float64, 0, len(report.Comparisons))
		ys := make([]float64, 0, len(report.Comparisons))
		for _, c := range report.Comparisons {
			if c.Class != class {
				continue
			}
			xs = append(xs, startYear(c.Length))
			ys = append(ys, c.Observed.Slope)
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// go-chart needs two x values per series
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "Observed " + string(class),
			XValues: xs,
			YValues: ys,
			Style:   dotStyle(classColors[class]),
		})
	}

	ch := chart.Chart{
		Title:      report.Title,
		Width:      1000,
		Height:     520,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Window start year"},
		YAxis:      chart.YAxis{Name: "Trend (units per decade)"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func hasCI(points []domain.TrendPoint) bool {
	for _, p := range points {
		if p.HasCI {
			return true
		}
	}
	return false
}
