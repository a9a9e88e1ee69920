package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dumasoft/fcalc/cli/cmd/repl"
	"github.com/dumasoft/fcalc/log"
)

// History inspects the REPL input history.
type History struct {
	Show   HistoryShow   `cmd:"" default:"withargs" help:"Print recorded inputs"`
	Export HistoryExport `cmd:""                    help:"Export history as text, JSON, or YAML"`
	Clear  HistoryClear  `cmd:""                    help:"Delete the history file"`
}

// historyEntry is the exported form of a single history record.
type historyEntry struct {
	Input string `json:"input" yaml:"input"`
	Kind  string `json:"kind"  yaml:"kind"`
}

func loadEntries(ctx context.Context) ([]historyEntry, error) {
	path := repl.HistoryPath(cacheDirFrom(ctx))

	h := repl.NewHistory(path)
	if err := h.Load(); err != nil {
		return nil, ErrHistory.
			With(slog.String("file", path)).
			Wrap(err)
	}

	all := h.Entries()
	entries := make([]historyEntry, len(all))

	for i, e := range all {
		entries[i] = historyEntry{Input: e.Line, Kind: e.Kind()}
	}

	return entries, nil
}

// HistoryShow prints recorded inputs, oldest first.
type HistoryShow struct {
	Last int `default:"0" help:"Show only the last N entries (0 for all)" short:"n"`
}

// Run executes the history show command.
func (s *HistoryShow) Run(ctx context.Context) error {
	entries, err := loadEntries(ctx)
	if err != nil {
		return err
	}

	if s.Last > 0 && len(entries) > s.Last {
		entries = entries[len(entries)-s.Last:]
	}

	out := stdoutFrom(ctx)
	for _, e := range entries {
		fmt.Fprintln(out, e.Input)
	}

	return nil
}

// HistoryExport writes the history in a structured format.
type HistoryExport struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Export format" short:"t"`
	Output string `default:"-"    help:"Output file or '-' for stdout"       short:"o"`
}

// Run executes the history export command.
func (e *HistoryExport) Run(ctx context.Context) (err error) {
	entries, err := loadEntries(ctx)
	if err != nil {
		return err
	}

	var out io.Writer = stdoutFrom(ctx)

	if e.Output != stdinSource {
		file, err := os.Create(e.Output)
		if err != nil {
			return ErrHistory.
				With(slog.String("file", e.Output)).
				Wrap(err)
		}
		defer file.Close()

		out = file
	}

	switch e.Format {
	case "text":
		for _, entry := range entries {
			fmt.Fprintln(out, entry.Input)
		}

		return nil

	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(entries)

	case "yaml":
		data, err := yaml.MarshalWithOptions(entries, yaml.Indent(2))
		if err != nil {
			return ErrHistory.Wrap(err)
		}

		_, err = out.Write(data)

		return err

	default:
		return ErrExportFormat.With(slog.String("format", e.Format))
	}
}

// HistoryClear deletes the history file.
type HistoryClear struct{}

// Run executes the history clear command.
func (c *HistoryClear) Run(ctx context.Context) error {
	path := repl.HistoryPath(cacheDirFrom(ctx))

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return ErrHistory.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "history cleared", slog.String("file", path))

	return nil
}
