package cmd

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dumasoft/fcalc/cli/cmd/repl"
	"github.com/dumasoft/fcalc/log"
)

// Repl starts the interactive calculator.
type Repl struct {
	Set        map[string]float64 `help:"Bind variables before the session starts (name=value)" placeholder:"name=value" short:"x"`
	Decimals   int                `default:"6" help:"Digits after the decimal point (negative for shortest)" short:"d"`
	Scientific bool               `help:"Print results in scientific notation" negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	return repl.Run(ctx, repl.Config{
		Vars:       maps.Clone(r.Set),
		Decimals:   r.Decimals,
		Scientific: r.Scientific,
		CacheDir:   cacheDirFrom(ctx),
		Logger:     log.With(slog.String("component", "repl")),
	})
}
