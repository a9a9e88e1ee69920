// Package cli contains the command line interface for fcalc.
//
// # Usage
//
// Expressions are evaluated directly from the command line:
//
//	fcalc '2+3*5'
//	fcalc --set r=2 'pi*r**2'
//	fcalc --source exprs.txt
//
// The repl subcommand starts an interactive session, init writes a
// default configuration file, and history inspects recorded REPL
// inputs.
//
// # Configuration
//
// Flags may be persisted in a YAML file under the user config
// directory (for example ~/.config/fcalc/config.yaml), written by
// fcalc init and loaded at startup. Command-line flags override file
// values.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized output (negatable)
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (cpu, heap, allocs, ...)
//   - --pprof-dir: profile output directory
package cli
