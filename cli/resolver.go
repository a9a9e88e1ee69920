package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML config files,
// used with [kong.Configuration]. The file is a flat mapping of flag
// names to values:
//
//	log-level: debug
//	log-format: text
//	decimals: 4
//
// Flag names may use underscores instead of hyphens. Command-line flags
// override config file values. An unreadable or malformed file resolves
// nothing rather than failing startup.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		// Malformed config: resolve nothing.
		return config{}, nil
	}

	return config(raw), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := c[flag.Name]
	if !ok {
		// Accept the underscore spelling too.
		value, ok = c[strings.ReplaceAll(flag.Name, "-", "_")]
	}

	if !ok {
		// Let kong use the default.
		return nil, nil
	}

	return normalize(value), nil
}

// normalize converts decoded YAML scalars into the string form kong's
// flag mappers expect.
func normalize(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return value
	}
}
