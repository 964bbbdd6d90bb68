// Package timerange derives evenly spaced time sequences from samples of
// existing values, and picks tick layouts suited to the span being plotted.
package timerange

import "time"

// DefaultStep is used when no step is given and none can be inferred from
// the x sample.
const DefaultStep = 24 * time.Hour

// Infer returns the spacing of the sample. It succeeds only when the sample
// has at least two points and every consecutive pair is the same positive
// duration apart.
func Infer(sample []time.Time) (time.Duration, bool) {
	if len(sample) < 2 {
		return 0, false
	}
	step := sample[1].Sub(sample[0])
	if step <= 0 {
		return 0, false
	}
	for i := 2; i < len(sample); i++ {
		if sample[i].Sub(sample[i-1]) != step {
			return 0, false
		}
	}
	return step, true
}

// New returns periods points starting at start, spaced step apart. The range
// is left-inclusive: the first point is start itself.
func New(start time.Time, step time.Duration, periods int) []time.Time {
	times := make([]time.Time, periods)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step)
	}
	return times
}

// DefaultStart is the range start used when only a y sample is supplied:
// January 1 of the current year.
func DefaultStart(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}

// Layout returns a time layout for tick labels, chosen by the span of the
// plotted range. Sub-minute spans keep full clock resolution; anything from
// a day up is labeled by date only.
func Layout(span time.Duration) string {
	switch {
	case span < time.Minute:
		return "15:04:05"
	case span < time.Hour:
		return "02 15:04"
	case span < 24*time.Hour:
		return "01-02 15:04"
	default:
		return "2006-01-02"
	}
}

// Span returns the distance between the first and last point of a range.
// Empty and single-point ranges have a zero span.
func Span(times []time.Time) time.Duration {
	if len(times) < 2 {
		return 0
	}
	return times[len(times)-1].Sub(times[0])
}
