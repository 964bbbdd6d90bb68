package timerange

import (
	"time"

	"gonum.org/v1/plot"
)

// DefaultMaxTicks caps the number of labeled ticks on a time axis.
const DefaultMaxTicks = 20

// Ticker implements plot.Ticker for time axes whose values are unix seconds.
// It delegates to plot.TimeTicks and falls back to evenly spaced ticks when
// the delegate would exceed MaxTicks labeled ticks.
type Ticker struct {
	// MaxTicks is the labeled tick cap. Zero means DefaultMaxTicks.
	MaxTicks int

	// Layout formats tick labels. Empty means a span-appropriate layout
	// from Layout.
	Layout string

	// Location resolves unix seconds to wall time for labeling. Nil means
	// time.UTC.
	Location *time.Location
}

// Ticks returns ticks for the [min, max] axis range.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	maxTicks := t.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := t.Layout
	if layout == "" {
		layout = Layout(time.Duration((max - min) * float64(time.Second)))
	}

	inner := plot.TimeTicks{
		Format: layout,
		Time:   plot.UnixTimeIn(loc),
	}
	ticks := inner.Ticks(min, max)

	labeled := 0
	for _, tick := range ticks {
		if tick.Label != "" {
			labeled++
		}
	}
	if labeled <= maxTicks {
		return ticks
	}

	// Too many labels: space maxTicks of them evenly over the range.
	if maxTicks == 1 {
		return []plot.Tick{{Value: min, Label: time.Unix(int64(min), 0).In(loc).Format(layout)}}
	}
	out := make([]plot.Tick, maxTicks)
	step := (max - min) / float64(maxTicks-1)
	for i := range out {
		v := min + float64(i)*step
		out[i] = plot.Tick{
			Value: v,
			Label: time.Unix(int64(v), 0).In(loc).Format(layout),
		}
	}
	return out
}
