package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
)

type TableConfig struct {
	LengthWidth int
	ValueWidth  int
	ClassWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LengthWidth: 8,
		ValueWidth:  10,
		ClassWidth:  12,
	}
}

// Reporter renders a comparison report as aligned text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.ComparisonReport) error {
	funcMap := template.FuncMap{
		"bandRow": func(b domain.EnsembleBand) string {
			w := c.config.ValueWidth
			return fmt.Sprintf("| %*d | %*.4f | %*.4f | %*.4f | %*.4f | %*.4f |",
				c.config.LengthWidth, b.Length,
				w, b.Mean, w, b.P2_5, w, b.P5, w, b.P95, w, b.P97_5)
		},
		"obsRow": func(p domain.ComparisonPoint) string {
			w := c.config.ValueWidth
			ciLow, ciHigh := "-", "-"
			if p.Observed.HasCI {
				ciLow = fmt.Sprintf("%.4f", p.Observed.CILow)
				ciHigh = fmt.Sprintf("%.4f", p.Observed.CIHigh)
			}
			overlap := "no"
			if p.CIOverlaps {
				overlap = "yes"
			}
			return fmt.Sprintf("| %*d | %*.4f | %*s | %*s | %-*s | %-7s |",
				c.config.LengthWidth, p.Length,
				w, p.Observed.Slope,
				w, ciLow, w, ciHigh,
				c.config.ClassWidth, p.Class, overlap)
		},
		"bandSep": func() string {
			w := c.config.ValueWidth + 2
			return "+" + strings.Repeat("-", c.config.LengthWidth+2) + strings.Repeat("+"+strings.Repeat("-", w), 5) + "+"
		},
		"obsSep": func() string {
			w := c.config.ValueWidth + 2
			return "+" + strings.Repeat("-", c.config.LengthWidth+2) +
				strings.Repeat("+"+strings.Repeat("-", w), 3) +
				"+" + strings.Repeat("-", c.config.ClassWidth+2) +
				"+" + strings.Repeat("-", 9) + "+"
		},
	}

	tmpl := `
{{.Title}}

End year: {{.Run.EndYear}}   Min window: {{.Run.MinLength}}   Max span: {{.Run.MaxSpan}}   Models: {{.ModelCount}}
{{if .Skipped}}
Excluded models:
{{range $id, $reason := .Skipped}}  - {{$id}}: {{$reason}}
{{end}}{{end}}
=== Ensemble bands (units per decade) ===
{{bandSep}}
|   Length |       Mean |      P2.5  |       P5   |      P95   |     P97.5  |
{{bandSep}}
{{range .Bands}}{{bandRow .}}
{{end}}{{bandSep}}

=== Observed trend vs ensemble ===
{{obsSep}}
|   Length |      Slope |     CI low |    CI high | Class        | Overlap |
{{obsSep}}
{{range .Comparisons}}{{obsRow .}}
{{end}}{{obsSep}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
