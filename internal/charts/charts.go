// Package charts renders the per-category breakdown as a PNG image.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"spendlog/internal/core"
)

// CategoryBar renders a bar chart of per-category totals, largest first.
// Returns nil bytes when there is nothing to draw.
func CategoryBar(groups []core.CategoryAmount, labelFor func(code string) string) ([]byte, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	if labelFor == nil {
		labelFor = func(code string) string { return code }
	}

	bars := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, chart.Value{
			Label: labelFor(g.Code),
			Value: g.Amount.Units(),
		})
	}

	graph := chart.BarChart{
		Title:    "Spending by category",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
