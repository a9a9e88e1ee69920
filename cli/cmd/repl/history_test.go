package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()

	return NewHistory(HistoryPath(t.TempDir()))
}

func TestHistoryLoadMissing(t *testing.T) {
	h := newTestHistory(t)

	if err := h.Load(); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestHistoryWriteAndLoad(t *testing.T) {
	h := newTestHistory(t)

	for _, line := range []string{"1+1", "2*3"} {
		if _, err := h.Write(line); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := h.WriteWithMode("vars", modeCtrl); err != nil {
		t.Fatal(err)
	}

	// A fresh History over the same file sees the same entries.
	reloaded := NewHistory(h.path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	entries := reloaded.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}

	want := []HistoryEntry{
		{Line: "1+1", Mode: modeEval},
		{Line: "2*3", Mode: modeEval},
		{Line: "vars", Mode: modeCtrl},
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestHistoryKind(t *testing.T) {
	if got := (HistoryEntry{Mode: modeEval}).Kind(); got != "eval" {
		t.Errorf("Kind = %q, want eval", got)
	}

	if got := (HistoryEntry{Mode: modeCtrl}).Kind(); got != "ctrl" {
		t.Errorf("Kind = %q, want ctrl", got)
	}
}

func TestHistoryLegacyLinesAreEval(t *testing.T) {
	dir := t.TempDir()
	path := HistoryPath(dir)

	content := "1+1\nE:2*3\nC:help\n\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3 (blank lines skipped)", len(entries))
	}

	if entries[0].Mode != modeEval || entries[0].Line != "1+1" {
		t.Errorf("legacy entry = %+v, want eval 1+1", entries[0])
	}
}

func TestHistoryDedupConsecutive(t *testing.T) {
	h := newTestHistory(t)

	for i := 0; i < 3; i++ {
		if _, err := h.Write("1+1"); err != nil {
			t.Fatal(err)
		}
	}

	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistoryRepeatMovesToEnd(t *testing.T) {
	h := newTestHistory(t)

	for _, line := range []string{"first", "second", "first"} {
		if _, err := h.Write(line); err != nil {
			t.Fatal(err)
		}
	}

	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len = %d, want 2", len(entries))
	}

	if entries[0].Line != "second" || entries[1].Line != "first" {
		t.Errorf("entries = %+v, want [second first]", entries)
	}

	// The rewrite must be durable.
	reloaded := NewHistory(h.path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := reloaded.Entries(); len(got) != 2 ||
		got[0].Line != "second" || got[1].Line != "first" {
		t.Errorf("reloaded entries = %+v, want [second first]", got)
	}
}

func TestHistorySameLineDifferentModes(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.WriteWithMode("clear", modeEval); err != nil {
		t.Fatal(err)
	}

	if _, err := h.WriteWithMode("clear", modeCtrl); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2 (modes are distinct)", h.Len())
	}
}

func TestHistoryWriteEmptyIgnored(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.Write("   "); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}

	if _, err := os.Stat(h.path); !os.IsNotExist(err) {
		t.Errorf("empty write created %s", filepath.Base(h.path))
	}
}

func TestHistoryGetEntryBounds(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.Write("1+1"); err != nil {
		t.Fatal(err)
	}

	if entry, err := h.GetEntry(0); err != nil || entry.Line != "1+1" {
		t.Errorf("GetEntry(0) = (%+v, %v)", entry, err)
	}

	for _, i := range []int{-1, 1, 99} {
		if _, err := h.GetEntry(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetEntry(%d) err = %v, want ErrOutOfBounds", i, err)
		}
	}
}
