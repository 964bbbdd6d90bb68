// Package tsplot reduces the boilerplate of formatting time-series plots
// with gonum/plot. Its helper builds a styled figure/axes grid and a derived
// evenly spaced time sequence from a sample of x and/or y values; the
// companion colormap package supplies a high-contrast palette for
// overlapping line series.
package tsplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/MichaelVerdegaal/tsplot/colormap"
	"github.com/MichaelVerdegaal/tsplot/timerange"
)

// ErrNoSamples is returned when neither an x nor a y sample is supplied.
var ErrNoSamples = errors.New("must provide at least one of x or y values")

type config struct {
	rows, cols int
	step       time.Duration
	start      time.Time
	layout     string
	title      string
	colors     []color.Color
	maxTicks   int
}

// Option configures the figure built by New.
type Option func(*config)

// WithRows sets the number of subplot rows. Defaults to 1.
func WithRows(n int) Option { return func(c *config) { c.rows = n } }

// WithCols sets the number of subplot columns. Defaults to 1.
func WithCols(n int) Option { return func(c *config) { c.cols = n } }

// WithFrequency sets the spacing of the derived time sequence. When unset,
// the spacing is inferred from the x sample, falling back to
// timerange.DefaultStep.
func WithFrequency(step time.Duration) Option { return func(c *config) { c.step = step } }

// WithStart sets the first point of the derived time sequence. When unset,
// the x sample's first value is used, or timerange.DefaultStart when only a
// y sample is given.
func WithStart(t time.Time) Option { return func(c *config) { c.start = t } }

// WithTimeFormat overrides the span-derived tick label layout.
func WithTimeFormat(layout string) Option { return func(c *config) { c.layout = layout } }

// WithTitle sets the title on every axes of the grid.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithColormap replaces the pong7 default for series color cycling.
func WithColormap(colors []color.Color) Option { return func(c *config) { c.colors = colors } }

// WithMaxTicks caps the number of labeled x ticks per axes. Defaults to
// timerange.DefaultMaxTicks.
func WithMaxTicks(n int) Option { return func(c *config) { c.maxTicks = n } }

// New builds a styled figure/axes grid and a derived time sequence from a
// sample of x and/or y values. At least one sample is required. The point
// count of the derived sequence matches the x sample when present, else the
// y sample; the sequence is left-inclusive and evenly spaced.
//
// The axes come pre-styled for temporal data: span-appropriate time tick
// labels with a tick cap, rotated x labels, dashed grey gridlines, and no
// axis padding. The caller owns the returned figure and axes and plots onto
// them directly; neither sample is retained.
func New(x []time.Time, y []float64, opts ...Option) (*Figure, []*plot.Plot, []time.Time, error) {
	cfg := config{
		rows:   1,
		cols:   1,
		colors: colormap.Colors(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(x) == 0 && len(y) == 0 {
		return nil, nil, nil, ErrNoSamples
	}
	if cfg.rows < 1 {
		return nil, nil, nil, fmt.Errorf("rows must be at least 1, got %d", cfg.rows)
	}
	if cfg.cols < 1 {
		return nil, nil, nil, fmt.Errorf("cols must be at least 1, got %d", cfg.cols)
	}
	if len(cfg.colors) == 0 {
		return nil, nil, nil, errors.New("colormap must have at least 1 color")
	}

	periods := len(x)
	if periods == 0 {
		periods = len(y)
	}

	// User-provided step takes priority, then inferred, then default.
	step := cfg.step
	if step == 0 {
		if inferred, ok := timerange.Infer(x); ok {
			step = inferred
		} else {
			step = timerange.DefaultStep
		}
	}

	start := cfg.start
	if start.IsZero() {
		if len(x) > 0 {
			start = x[0]
		} else {
			start = timerange.DefaultStart(time.Now())
		}
	}

	times := timerange.New(start, step, periods)

	axes := make([]*plot.Plot, cfg.rows*cfg.cols)
	for i := range axes {
		axes[i] = newAxes(cfg)
	}

	fig := &Figure{
		Axes:   axes,
		Rows:   cfg.rows,
		Cols:   cfg.cols,
		colors: cfg.colors,
	}
	return fig, axes, times, nil
}

func newAxes(cfg config) *plot.Plot {
	p := plot.New()
	if cfg.title != "" {
		p.Title.Text = cfg.title
	}

	p.X.Tick.Marker = timerange.Ticker{
		MaxTicks: cfg.maxTicks,
		Layout:   cfg.layout,
	}

	// Rotate and right-align the x tick labels, to avoid overlap.
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	// No margin between data and axes.
	p.X.Padding = 0
	p.Y.Padding = 0

	grid := plotter.NewGrid()
	grid.Vertical = gridLineStyle
	grid.Horizontal = gridLineStyle
	p.Add(grid)

	return p
}

var gridLineStyle = draw.LineStyle{
	Color:  color.RGBA{R: 0xb2, G: 0xb2, B: 0xb2, A: 0xff},
	Width:  vg.Points(0.5),
	Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
}

// XYs pairs a time sequence with y values as gonum plotter points, with
// times mapped to unix seconds.
func XYs(times []time.Time, values []float64) (plotter.XYs, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("times and values must be the same length, got %d and %d", len(times), len(values))
	}
	pts := make(plotter.XYs, len(times))
	for i := range pts {
		pts[i].X = float64(times[i].Unix())
		pts[i].Y = values[i]
	}
	return pts, nil
}
