package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/prometheus/common/model"

	"github.com/MichaelVerdegaal/tsplot/colormap"
)

// Barchart renders an instant vector as horizontal bars, one per sample,
// with bar colors cycling through the colormap.
func Barchart(vector model.Vector, width int) string {
	barData := make([]barchart.BarData, 0)
	for i, sample := range vector {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", sample.Metric.String(), int(sample.Value)),
			Values: []barchart.BarValue{
				{Name: sample.Metric.String(), Value: float64(sample.Value), Style: colormap.Style(i)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
