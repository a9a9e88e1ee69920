package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/dumasoft/fcalc/log"
)

// logFormat configures the logger format as a side effect of parsing
// via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler. Kong calls it
// while parsing --log-format, configuring the logger early enough to
// affect error messages emitted during parsing itself.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to apply
// logger configuration before kong begins parsing, so the logger
// behaves consistently no matter where the flags sit on the command
// line. Boolean flags like --log-pretty don't go through
// TextUnmarshaler, which is why parsing alone isn't enough.
func (f *logConfig) scan(args []string) {
	const (
		logPrefix   = "--log-"
		noLogPrefix = "--no-log-"
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		hasLogPrefix := len(arg) >= len(logPrefix) &&
			arg[:len(logPrefix)] == logPrefix
		hasNoLogPrefix := len(arg) >= len(noLogPrefix) &&
			arg[:len(noLogPrefix)] == noLogPrefix

		if !hasLogPrefix && !hasNoLogPrefix {
			continue
		}

		prefixLen := len(logPrefix)
		if hasNoLogPrefix {
			prefixLen = len(noLogPrefix)
		}

		var (
			name, value string
			assigned    bool
		)

		name = arg

		for j := prefixLen; j < len(arg); j++ {
			if arg[j] == '=' {
				name, value = arg[:j], arg[j+1:]
				assigned = true

				break
			}
		}

		// Non-boolean flags consume the next argument when the value
		// was not assigned with "=".
		consume := func() string {
			if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		// Boolean flags accept an optional "=value".
		boolValue := func(implicit bool) (bool, bool) {
			if !assigned {
				return implicit, true
			}

			v, err := strconv.ParseBool(value)
			if err != nil {
				return false, false
			}

			return v, true
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(consume()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(consume()))

		case "--log-pretty":
			if v, ok := boolValue(true); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case "--no-log-pretty":
			if v, ok := boolValue(true); ok {
				f.Pretty = !v
				log.Config(log.WithPretty(!v))
			}

		case "--log-caller":
			if v, ok := boolValue(true); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}

		case "--no-log-caller":
			if v, ok := boolValue(true); ok {
				f.Caller = !v
				log.Config(log.WithCaller(!v))
			}
		}
	}
}
