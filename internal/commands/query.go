package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/MichaelVerdegaal/tsplot/internal/charts"
	"github.com/MichaelVerdegaal/tsplot/internal/prometheus"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." env:"TSPLOT_PROMETHEUS_URL" name:"prometheus-url" default:"http://localhost:9090"`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`
}

func (q *QueryCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	return q.run(client, ctx.Timeout)
}

func (q *QueryCmd) run(client prometheus.Client, timeout time.Duration) error {
	warnings, vector, err := client.Query(q.Query, timeout)
	if err != nil {
		return fmt.Errorf("querying %s: %w", q.PrometheusURL, err)
	}
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	if len(vector) == 0 {
		fmt.Println("No Data")
		return nil
	}

	fmt.Println(charts.Barchart(vector, charts.TerminalWidth()))
	return nil
}
