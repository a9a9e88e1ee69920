package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/dumasoft/fcalc/cli/cmd/repl"
)

func parseHistory(t *testing.T, cacheDir string, args ...string) (*History, context.Context, *bytes.Buffer) {
	t.Helper()

	var root struct {
		History History `cmd:""`
	}

	var buf bytes.Buffer

	parser, err := kong.New(&root,
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) {}),
		kong.Vars{CacheIdentifier: cacheDir},
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(append([]string{"history"}, args...))
	if err != nil {
		t.Fatal(err)
	}

	return &root.History, WithContext(context.Background(), ktx), &buf
}

func seedHistory(t *testing.T, cacheDir string, lines ...string) {
	t.Helper()

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line + "\n")
	}

	path := repl.HistoryPath(cacheDir)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryShow(t *testing.T) {
	dir := t.TempDir()
	seedHistory(t, dir, "E:1+1", "E:2*3", "C:vars")

	t.Run("all entries", func(t *testing.T) {
		h, ctx, buf := parseHistory(t, dir)

		if err := h.Show.Run(ctx); err != nil {
			t.Fatal(err)
		}

		want := "1+1\n2*3\nvars\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("last n", func(t *testing.T) {
		h, ctx, buf := parseHistory(t, dir, "--last=1")

		if err := h.Show.Run(ctx); err != nil {
			t.Fatal(err)
		}

		if got := buf.String(); got != "vars\n" {
			t.Errorf("output = %q, want %q", got, "vars\n")
		}
	})

	t.Run("missing file is empty", func(t *testing.T) {
		h, ctx, buf := parseHistory(t, t.TempDir())

		if err := h.Show.Run(ctx); err != nil {
			t.Fatal(err)
		}

		if got := buf.String(); got != "" {
			t.Errorf("output = %q, want empty", got)
		}
	})
}

func TestHistoryExport(t *testing.T) {
	dir := t.TempDir()
	seedHistory(t, dir, "E:1+1", "C:help")

	t.Run("json to stdout", func(t *testing.T) {
		h, ctx, buf := parseHistory(t, dir, "export", "--format=json")

		if err := h.Export.Run(ctx); err != nil {
			t.Fatal(err)
		}

		var entries []struct {
			Input string `json:"input"`
			Kind  string `json:"kind"`
		}
		if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}

		if len(entries) != 2 ||
			entries[0].Input != "1+1" || entries[0].Kind != "eval" ||
			entries[1].Input != "help" || entries[1].Kind != "ctrl" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("text to file", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.txt")
		h, ctx, _ := parseHistory(t, dir, "export", "--output="+outPath)

		if err := h.Export.Run(ctx); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}

		if got := string(data); got != "1+1\nhelp\n" {
			t.Errorf("file = %q, want %q", got, "1+1\nhelp\n")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		h, ctx, buf := parseHistory(t, dir, "export", "--format=yaml")

		if err := h.Export.Run(ctx); err != nil {
			t.Fatal(err)
		}

		got := buf.String()
		if !bytes.Contains([]byte(got), []byte("input: 1+1")) ||
			!bytes.Contains([]byte(got), []byte("kind: ctrl")) {
			t.Errorf("yaml output missing entries:\n%s", got)
		}
	})
}

func TestHistoryClear(t *testing.T) {
	dir := t.TempDir()
	seedHistory(t, dir, "E:1+1")

	h, ctx, _ := parseHistory(t, dir, "clear")

	if err := h.Clear.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(repl.HistoryPath(dir)); !os.IsNotExist(err) {
		t.Errorf("history file still exists: %v", err)
	}
}

func TestHistoryClearMissing(t *testing.T) {
	h, ctx, _ := parseHistory(t, t.TempDir(), "clear")

	if err := h.Clear.Run(ctx); err != nil {
		t.Errorf("clearing missing history: %v", err)
	}
}
