package tsplot

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/MichaelVerdegaal/tsplot/timerange"
)

func TestNewValidation(t *testing.T) {
	y := []float64{1, 2, 3}

	t.Run("neither sample fails", func(t *testing.T) {
		_, _, _, err := New(nil, nil)
		if !errors.Is(err, ErrNoSamples) {
			t.Errorf("err = %v, want ErrNoSamples", err)
		}
	})

	t.Run("both samples empty fails", func(t *testing.T) {
		_, _, _, err := New([]time.Time{}, []float64{})
		if !errors.Is(err, ErrNoSamples) {
			t.Errorf("err = %v, want ErrNoSamples", err)
		}
	})

	t.Run("rows below 1 fails", func(t *testing.T) {
		_, _, _, err := New(nil, y, WithRows(0))
		if err == nil {
			t.Error("New() should fail for rows=0")
		}
	})

	t.Run("cols below 1 fails", func(t *testing.T) {
		_, _, _, err := New(nil, y, WithCols(-1))
		if err == nil {
			t.Error("New() should fail for cols=-1")
		}
	})

	t.Run("empty colormap fails", func(t *testing.T) {
		_, _, _, err := New(nil, y, WithColormap(nil))
		if err == nil {
			t.Error("New() should fail for an empty colormap")
		}
	})
}

func TestNewYSampleOnly(t *testing.T) {
	y := make([]float64, 10)

	fig, axes, times, err := New(nil, y)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if fig == nil {
		t.Fatal("New() returned nil figure")
	}
	if len(axes) != 1 {
		t.Errorf("len(axes) = %d, want 1", len(axes))
	}

	// Derived sequence length matches the y sample.
	if len(times) != 10 {
		t.Fatalf("len(times) = %d, want 10", len(times))
	}

	// Default range: daily spacing from Jan 1 of the current year.
	wantStart := timerange.DefaultStart(time.Now())
	if !times[0].Equal(wantStart) {
		t.Errorf("times[0] = %v, want %v", times[0], wantStart)
	}
	if got := times[1].Sub(times[0]); got != timerange.DefaultStep {
		t.Errorf("step = %v, want %v", got, timerange.DefaultStep)
	}
}

func TestNewXSampleOnly(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	x := timerange.New(start, 15*time.Minute, 8)

	_, _, times, err := New(x, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if len(times) != len(x) {
		t.Fatalf("len(times) = %d, want %d", len(times), len(x))
	}

	// Derived sequence reproduces the sample's span and spacing.
	if !times[0].Equal(x[0]) {
		t.Errorf("times[0] = %v, want %v", times[0], x[0])
	}
	if got, want := timerange.Span(times), timerange.Span(x); got != want {
		t.Errorf("span = %v, want %v", got, want)
	}
}

func TestNewUnevenXFallsBackToDefaultStep(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	x := []time.Time{base, base.Add(time.Minute), base.Add(time.Hour)}

	_, _, times, err := New(x, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := times[1].Sub(times[0]); got != timerange.DefaultStep {
		t.Errorf("step = %v, want %v", got, timerange.DefaultStep)
	}
}

func TestNewOptions(t *testing.T) {
	y := make([]float64, 4)

	t.Run("frequency overrides inference", func(t *testing.T) {
		x := timerange.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Hour, 4)

		_, _, times, err := New(x, nil, WithFrequency(time.Minute))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if got := times[1].Sub(times[0]); got != time.Minute {
			t.Errorf("step = %v, want 1m", got)
		}
	})

	t.Run("start overrides sample", func(t *testing.T) {
		start := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

		_, _, times, err := New(nil, y, WithStart(start))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if !times[0].Equal(start) {
			t.Errorf("times[0] = %v, want %v", times[0], start)
		}
	})

	t.Run("subplot grid", func(t *testing.T) {
		fig, axes, _, err := New(nil, y, WithRows(2), WithCols(3))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if len(axes) != 6 {
			t.Errorf("len(axes) = %d, want 6", len(axes))
		}
		grid := fig.Grid()
		if len(grid) != 2 || len(grid[0]) != 3 {
			t.Errorf("grid is %dx%d, want 2x3", len(grid), len(grid[0]))
		}
	})

	t.Run("title applied to axes", func(t *testing.T) {
		_, axes, _, err := New(nil, y, WithTitle("demand"))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if axes[0].Title.Text != "demand" {
			t.Errorf("title = %q, want %q", axes[0].Title.Text, "demand")
		}
	})
}

func TestFigureColorCycles(t *testing.T) {
	y := make([]float64, 2)
	palette := []color.Color{
		color.RGBA{R: 0xff, A: 0xff},
		color.RGBA{G: 0xff, A: 0xff},
	}

	fig, _, _, err := New(nil, y, WithColormap(palette))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if fig.Color(0) != palette[0] {
		t.Errorf("Color(0) = %v, want %v", fig.Color(0), palette[0])
	}
	if fig.Color(3) != palette[1] {
		t.Errorf("Color(3) = %v, want %v (cycling)", fig.Color(3), palette[1])
	}
}

func TestXYs(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := timerange.New(start, time.Hour, 3)

	t.Run("pairs times and values", func(t *testing.T) {
		pts, err := XYs(times, []float64{1, 2, 3})
		if err != nil {
			t.Fatalf("XYs() error = %v", err)
		}
		if len(pts) != 3 {
			t.Fatalf("len(pts) = %d, want 3", len(pts))
		}
		if pts[0].X != float64(start.Unix()) {
			t.Errorf("pts[0].X = %v, want %v", pts[0].X, float64(start.Unix()))
		}
		if pts[2].Y != 3 {
			t.Errorf("pts[2].Y = %v, want 3", pts[2].Y)
		}
	})

	t.Run("length mismatch fails", func(t *testing.T) {
		if _, err := XYs(times, []float64{1}); err == nil {
			t.Error("XYs() should fail for mismatched lengths")
		}
	})
}

func TestFigureWritesPNG(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	x := timerange.New(start, time.Hour, 12)
	y := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8}

	fig, axes, times, err := New(x, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := fig.AddLine(axes[0], 0, times, y); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := fig.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not start with a PNG header")
	}
}
