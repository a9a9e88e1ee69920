// Package cmd implements the fcalc subcommands.
//
// Eval is the default command: it evaluates expressions given as
// arguments or read line by line from --source files, binding
// variables for "name = expr" inputs. Repl starts the interactive
// session, Init writes the YAML configuration file, and History shows,
// exports, or clears the recorded REPL inputs.
//
// Values shared between the CLI layer and commands (the config file
// path and the cache directory) travel through [kong.Vars] under
// [ConfigIdentifier] and [CacheIdentifier].
package cmd
