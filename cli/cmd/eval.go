package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/dumasoft/fcalc/calc"
	"github.com/dumasoft/fcalc/log"
)

// Eval evaluates one or more expressions and prints their results.
//
// Expressions come from command-line arguments and from any --source
// files, one expression per line. An expression of the form "name =
// expr" binds a variable visible to every later expression in the same
// invocation.
type Eval struct {
	Exprs []string `arg:"" help:"Expressions to evaluate" name:"expr" optional:""`

	Set        map[string]float64 `help:"Bind variables before evaluation (name=value)" placeholder:"name=value" short:"x"`
	Decimals   int                `default:"6"  help:"Digits after the decimal point (negative for shortest)" short:"d"`
	Scientific bool               `help:"Print results in scientific notation" negatable:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := stdoutFrom(ctx)

	vars := maps.Clone(e.Set)
	if vars == nil {
		vars = make(map[string]float64)
	}

	count := 0

	if src := sourceFilesFrom(ctx); src != nil {
		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			if err := e.eval(ctx, out, line, vars); err != nil {
				return err
			}

			count++
		}

		if err := scanner.Err(); err != nil {
			return ErrReadSource.Wrap(err)
		}
	}

	for _, expr := range e.Exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}

		if err := e.eval(ctx, out, expr, vars); err != nil {
			return err
		}

		count++
	}

	if count == 0 {
		return ErrNoExpression
	}

	return nil
}

// eval evaluates a single input, updating vars when it is an
// assignment.
func (e *Eval) eval(
	ctx context.Context,
	out io.Writer,
	input string,
	vars map[string]float64,
) error {
	name, val, assigned, err := calc.Assign(input, vars)
	if err != nil {
		return ErrEvaluate.
			With(slog.String("input", input)).
			Wrap(err)
	}

	if assigned {
		vars[name] = val

		log.DebugContext(ctx, "variable bound",
			slog.String("name", name),
			slog.Float64("value", val),
		)

		fmt.Fprintf(out, "%s = %s\n", name, calc.Format(val, e.Decimals, e.Scientific))

		return nil
	}

	result, err := calc.Evaluate(input, vars)
	if err != nil {
		return ErrEvaluate.
			With(slog.String("input", input)).
			Wrap(err)
	}

	log.DebugContext(ctx, "expression evaluated",
		slog.String("input", input),
		slog.Float64("result", result),
	)

	fmt.Fprintln(out, calc.Format(result, e.Decimals, e.Scientific))

	return nil
}
