package charts

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"
	"golang.org/x/term"

	"github.com/MichaelVerdegaal/tsplot/colormap"
	"github.com/MichaelVerdegaal/tsplot/timerange"
)

var axisStyle = lipgloss.NewStyle().Foreground(colormap.Color(1)) // ochre

var labelStyle = lipgloss.NewStyle().Foreground(colormap.Color(5)) // sky

// LegendEntry identifies one plotted series and its colormap index.
type LegendEntry struct {
	Metric     string
	ColorIndex int
}

// Timeseries renders a matrix of series as a braille line chart, with series
// colors cycling through the colormap. Legend entries are returned in series
// order.
func Timeseries(matrix model.Matrix, width int) (chart string, legend []LegendEntry) {
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	var first, last time.Time
	for _, stream := range matrix {
		for _, sample := range stream.Values {
			v := float64(sample.Value)
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
			ts := sample.Timestamp.Time()
			if first.IsZero() || ts.Before(first) {
				first = ts
			}
			if ts.After(last) {
				last = ts
			}
		}
	}

	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	layout := timerange.Layout(last.Sub(first))
	lc.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format(layout)
	}
	if minY <= maxY {
		lc.SetYRange(minY, maxY)     // set expected Y values (values can be less or greater than what is displayed)
		lc.SetViewYRange(minY, maxY) // setting display Y values will fail unless set expected Y values first
	}
	lc.SetLineStyle(runes.ThinLineStyle) // ThinLineStyle replaces default linechart arcline rune style

	legend = make([]LegendEntry, 0, len(matrix))
	for i, stream := range matrix {
		name := stream.Metric.String()
		legend = append(legend, LegendEntry{Metric: name, ColorIndex: i})
		lc.SetDataSetStyle(name, colormap.Style(i))
		for _, sample := range stream.Values {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  sample.Timestamp.Time(),
				Value: float64(sample.Value),
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}

// Legend renders legend entries as colormap-styled lines.
func Legend(entries []LegendEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString("\n")
		b.WriteString(colormap.Style(entry.ColorIndex).Render(fmt.Sprintf("%c %s", runes.FullBlock, entry.Metric)))
	}
	return b.String()
}

// TerminalWidth returns the width of the attached terminal, or
// DefaultChartWidth when there is none.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 {
		return DefaultChartWidth
	}
	return width
}
