package repl

import (
	"slices"
	"testing"

	"github.com/sahilm/fuzzy"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + sq", 6, "sq", 4, 6},
		{"after_paren", "sqrt(pi", 7, "pi", 5, 7},
		{"after_comma", "max(a, fo", 9, "fo", 7, 9},
		{"after_comparison", "a > fo", 6, "fo", 4, 6},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"underscore", "my_var", 6, "my_var", 0, 6},
		{"digits", "x1+y2", 5, "y2", 3, 5},
		{"cursor_past_end", "abc", 9, "abc", 0, 3},
		{"empty_input", "", 0, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestEvalCandidates(t *testing.T) {
	names := evalCandidates(map[string]float64{"radius": 2, "pi": 3})

	if !slices.IsSorted(names) {
		t.Errorf("candidates not sorted: %v", names)
	}

	for _, want := range []string{"sqrt", "pi", "tau", "radius"} {
		if !slices.Contains(names, want) {
			t.Errorf("candidates missing %q", want)
		}
	}

	// A variable shadowing a builtin must not appear twice.
	count := 0
	for _, name := range names {
		if name == "pi" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("pi appears %d times, want 1", count)
	}
}

func TestComputeMatches(t *testing.T) {
	m := newTestModel(t, map[string]float64{"radius": 2})

	t.Run("prefix match", func(t *testing.T) {
		m.input.SetValue("sq")
		m.input.SetCursor(2)

		matches, _, start, end := m.computeMatches()
		if start != 0 || end != 2 {
			t.Errorf("word bounds = (%d, %d), want (0, 2)", start, end)
		}

		found := false
		for _, match := range matches {
			if match.Str == "sqrt" {
				found = true
			}
		}
		if !found {
			t.Errorf("matches for %q missing sqrt: %v", "sq", matches)
		}
	})

	t.Run("variable match", func(t *testing.T) {
		m.input.SetValue("rad")
		m.input.SetCursor(3)

		matches, _, _, _ := m.computeMatches()

		found := false
		for _, match := range matches {
			if match.Str == "radius" {
				found = true
			}
		}
		if !found {
			t.Errorf("matches for %q missing radius: %v", "rad", matches)
		}
	})

	t.Run("empty word yields none", func(t *testing.T) {
		m.input.SetValue("1+")
		m.input.SetCursor(2)

		matches, _, _, _ := m.computeMatches()
		if len(matches) != 0 {
			t.Errorf("matches = %v, want none", matches)
		}
	})

	t.Run("ctrl mode completes commands", func(t *testing.T) {
		m.mode = modeCtrl
		defer func() { m.mode = modeEval }()

		m.input.SetValue("qu")
		m.input.SetCursor(2)

		matches, _, _, _ := m.computeMatches()
		if len(matches) == 0 || matches[0].Str != "quit" {
			t.Errorf("matches = %v, want quit first", matches)
		}
	})
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Find("s", []string{"sin", "sinh", "sqrt"})

	t.Run("fits", func(t *testing.T) {
		bar := renderCandidateBar(matches, 0, false, 200)
		if bar == "" {
			t.Fatal("empty bar")
		}
	})

	t.Run("ellipsized", func(t *testing.T) {
		bar := renderCandidateBar(matches, 0, false, 12)
		if bar == "" {
			t.Fatal("empty bar")
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if bar := renderCandidateBar(nil, 0, false, 80); bar != "" {
			t.Errorf("bar = %q, want empty", bar)
		}
	})

	t.Run("zero width", func(t *testing.T) {
		if bar := renderCandidateBar(matches, 0, false, 0); bar != "" {
			t.Errorf("bar = %q, want empty", bar)
		}
	})
}
