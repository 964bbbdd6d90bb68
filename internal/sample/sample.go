// Package sample generates synthetic time series for the demo command and
// tests: a linear trend with gaussian noise over an evenly spaced range.
package sample

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MichaelVerdegaal/tsplot/timerange"
)

// Config describes the generated series.
type Config struct {
	Start     time.Time
	Step      time.Duration
	Points    int
	Slope     float64
	Intercept float64
	Noise     float64 // standard deviation of the noise
	Seed      int64   // 0 seeds from the current time
}

// Generate returns timestamps and values for the configured series.
func Generate(cfg Config) ([]time.Time, []float64, error) {
	if cfg.Points < 1 {
		return nil, nil, fmt.Errorf("points must be at least 1, got %d", cfg.Points)
	}
	if cfg.Step < 1 {
		return nil, nil, fmt.Errorf("step must be positive, got %v", cfg.Step)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	times := timerange.New(cfg.Start, cfg.Step, cfg.Points)
	values := make([]float64, cfg.Points)
	for i := range values {
		values[i] = cfg.Slope*float64(i) + cfg.Intercept + rng.NormFloat64()*cfg.Noise
	}
	return times, values, nil
}
