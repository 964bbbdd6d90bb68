// Package commands defines the CLI surface: plotting generated series and
// Prometheus range queries with the tsplot helpers.
package commands

import "time"

type Context struct {
	Timeout time.Duration
}

type CLI struct {
	Timeout time.Duration `help:"Timeout for Prometheus queries." default:"60s"`

	Demo        DemoCmd        `cmd:"" help:"Plot a generated example series."`
	Query       QueryCmd       `cmd:"" help:"Chart an instant Prometheus query."`
	Prom        PromCmd        `cmd:"" help:"Plot the result of a Prometheus range query."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}
