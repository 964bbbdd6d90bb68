package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/common/model"

	"github.com/MichaelVerdegaal/tsplot"
	"github.com/MichaelVerdegaal/tsplot/internal/charts"
	"github.com/MichaelVerdegaal/tsplot/internal/sample"
	"github.com/MichaelVerdegaal/tsplot/timerange"
)

type DemoCmd struct {
	Points int           `help:"Number of samples to generate." default:"96"`
	Step   time.Duration `help:"Spacing between samples." default:"15m"`
	Slope  float64       `help:"Trend slope." default:"0.5"`
	Noise  float64       `help:"Noise standard deviation." default:"2"`
	Seed   int64         `help:"Random seed. 0 seeds from the current time."`
	Output string        `name:"output" short:"o" help:"Output format." default:"term" enum:"term,png"`
	File   string        `help:"PNG output path." default:"tsplot.png"`
}

func (d *DemoCmd) Run(_ *Context) error {
	times, values, err := sample.Generate(sample.Config{
		Start:  timerange.DefaultStart(time.Now()),
		Step:   d.Step,
		Points: d.Points,
		Slope:  d.Slope,
		Noise:  d.Noise,
		Seed:   d.Seed,
	})
	if err != nil {
		return err
	}

	if d.Output == "png" {
		fig, axes, ts, err := tsplot.New(times, values)
		if err != nil {
			return err
		}
		line, err := fig.AddLine(axes[0], 0, ts, values)
		if err != nil {
			return err
		}
		axes[0].Legend.Add("demo", line)
		if err := fig.Save(d.File); err != nil {
			return err
		}
		fmt.Println("wrote", d.File)
		return nil
	}

	matrix := model.Matrix{demoStream(times, values)}
	chart, legend := charts.Timeseries(matrix, charts.TerminalWidth())
	fmt.Println(chart)
	fmt.Println(charts.Legend(legend))
	return nil
}

func demoStream(times []time.Time, values []float64) *model.SampleStream {
	pairs := make([]model.SamplePair, len(times))
	for i := range pairs {
		pairs[i] = model.SamplePair{
			Timestamp: model.TimeFromUnix(times[i].Unix()),
			Value:     model.SampleValue(values[i]),
		}
	}
	return &model.SampleStream{
		Metric: model.Metric{"__name__": "demo"},
		Values: pairs,
	}
}
