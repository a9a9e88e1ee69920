// Package log provides a small structured logging interface over
// [log/slog].
//
// A [Logger] is configured once at creation with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// Package-level functions ([Info], [Error], and friends) share a
// default logger writing to stderr, reconfigurable with [Config].
//
// Five levels are supported, [LevelTrace] through [LevelError], and two
// formats, [FormatText] and [FormatJSON]. With [WithPretty] enabled
// (the default) output is colorized for terminals; disable it when
// writing to files or pipes.
package log
