package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/common/model"

	"github.com/MichaelVerdegaal/tsplot"
	"github.com/MichaelVerdegaal/tsplot/internal/charts"
	"github.com/MichaelVerdegaal/tsplot/internal/prometheus"
)

type PromCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"TSPLOT_PROMETHEUS_URL" name:"prometheus-url" default:"http://localhost:9090"`
	Query         string        `arg:"" name:"query" help:"Query to run." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" help:"Resolution step." default:"1m"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"term" enum:"term,png"`
	File          string        `help:"PNG output path." default:"tsplot.png"`
}

func (q *PromCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	return q.run(client, ctx.Timeout)
}

func (q *PromCmd) run(client prometheus.Client, timeout time.Duration) error {
	end := time.Now()
	start := end.Add(-q.Range)
	matrix, warnings, err := client.QueryRange(q.Query, start, end, q.Step, timeout)
	if err != nil {
		return fmt.Errorf("querying %s: %w", q.PrometheusURL, err)
	}
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	if len(matrix) == 0 {
		return fmt.Errorf("query %q returned no series", q.Query)
	}

	if q.Output == "png" {
		fig, err := plotMatrix(matrix, q.Step)
		if err != nil {
			return err
		}
		if err := fig.Save(q.File); err != nil {
			return err
		}
		fmt.Println("wrote", q.File)
		return nil
	}

	chart, legend := charts.Timeseries(matrix, charts.TerminalWidth())
	fmt.Println(chart)
	fmt.Println(charts.Legend(legend))
	return nil
}

// plotMatrix builds a figure with one colormap-cycled line per series. The x
// sample comes from the first stream's timestamps.
func plotMatrix(matrix model.Matrix, step time.Duration) (*tsplot.Figure, error) {
	x := make([]time.Time, len(matrix[0].Values))
	for i, pair := range matrix[0].Values {
		x[i] = pair.Timestamp.Time()
	}

	fig, axes, _, err := tsplot.New(x, nil, tsplot.WithFrequency(step))
	if err != nil {
		return nil, err
	}

	for i, stream := range matrix {
		ts := make([]time.Time, len(stream.Values))
		values := make([]float64, len(stream.Values))
		for j, pair := range stream.Values {
			ts[j] = pair.Timestamp.Time()
			values[j] = float64(pair.Value)
		}
		line, err := fig.AddLine(axes[0], i, ts, values)
		if err != nil {
			return nil, err
		}
		axes[0].Legend.Add(stream.Metric.String(), line)
	}
	return fig, nil
}
