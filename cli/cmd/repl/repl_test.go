package repl

import (
	"context"
	"strings"
	"testing"

	"github.com/dumasoft/fcalc/calc"
	"github.com/dumasoft/fcalc/log"
)

func newTestModel(t *testing.T, vars map[string]float64) model {
	t.Helper()

	history := NewHistory(HistoryPath(t.TempDir()))

	cfg := Config{
		Vars:     vars,
		Decimals: 6,
		Logger:   log.Logger{},
	}

	return newModel(context.Background(), cfg, history)
}

func TestExecuteInputAssignment(t *testing.T) {
	m := newTestModel(t, nil)
	m.input.SetValue("r = 2")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Fatal("expected output command")
	}

	if m.vars["r"] != 2 {
		t.Errorf("vars[r] = %g, want 2", m.vars["r"])
	}

	if m.history.Len() != 1 {
		t.Errorf("history Len = %d, want 1", m.history.Len())
	}
}

func TestExecuteInputEvalUsesVars(t *testing.T) {
	m := newTestModel(t, map[string]float64{"r": 2})
	m.input.SetValue("pi*r**2")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Fatal("expected output command")
	}

	// Plain evaluation must not bind anything.
	if len(m.vars) != 1 {
		t.Errorf("vars = %v, want only r", m.vars)
	}
}

func TestExecuteInputEmpty(t *testing.T) {
	m := newTestModel(t, nil)
	m.input.SetValue("   ")

	m, cmd := m.executeInput()
	if cmd != nil {
		t.Error("blank input should produce no command")
	}

	if m.history.Len() != 0 {
		t.Errorf("history Len = %d, want 0", m.history.Len())
	}
}

func TestExecuteCommandQuit(t *testing.T) {
	m := newTestModel(t, nil)

	for _, alias := range []string{"q", "quit", "exit"} {
		n, cmd := m.executeCommand(alias)
		if !n.quitting || cmd == nil {
			t.Errorf("executeCommand(%q): quitting=%v", alias, n.quitting)
		}
	}
}

func TestDeleteVars(t *testing.T) {
	m := newTestModel(t, map[string]float64{"a": 1, "b": 2})

	m, _ = m.deleteVars(nil, []string{"a"})
	if _, ok := m.vars["a"]; ok {
		t.Error("a still defined after del")
	}

	if _, ok := m.vars["b"]; !ok {
		t.Error("b should survive del a")
	}

	// Deleting an unknown name reports it but is not fatal.
	m, cmd := m.deleteVars(nil, []string{"nosuch"})
	if cmd == nil {
		t.Error("expected error output for unknown name")
	}
}

func TestVarsView(t *testing.T) {
	m := newTestModel(t, map[string]float64{"beta": 2, "alpha": 1})

	view := m.varsView()

	alphaAt := strings.Index(view, "alpha")
	betaAt := strings.Index(view, "beta")

	if alphaAt < 0 || betaAt < 0 || alphaAt > betaAt {
		t.Errorf("varsView not sorted:\n%s", view)
	}

	empty := newTestModel(t, nil)
	if !strings.Contains(empty.varsView(), "no session variables") {
		t.Errorf("empty varsView = %q", empty.varsView())
	}
}

func TestToggleModePreservesInput(t *testing.T) {
	m := newTestModel(t, nil)
	m.input.SetValue("1+2")
	m.input.SetCursor(3)

	m, _ = m.toggleMode()
	if m.mode != modeCtrl {
		t.Fatalf("mode = %v, want ctrl", m.mode)
	}

	if m.input.Value() != "" {
		t.Errorf("ctrl input = %q, want empty", m.input.Value())
	}

	m.input.SetValue("he")

	m, _ = m.toggleMode()
	if m.mode != modeEval {
		t.Fatalf("mode = %v, want eval", m.mode)
	}

	if m.input.Value() != "1+2" {
		t.Errorf("eval input = %q, want preserved 1+2", m.input.Value())
	}

	m, _ = m.toggleMode()
	if m.input.Value() != "he" {
		t.Errorf("ctrl input = %q, want preserved he", m.input.Value())
	}
}

func TestHistoryNavigationSwitchesMode(t *testing.T) {
	m := newTestModel(t, nil)

	if _, err := m.history.WriteWithMode("1+1", modeEval); err != nil {
		t.Fatal(err)
	}

	if _, err := m.history.WriteWithMode("vars", modeCtrl); err != nil {
		t.Fatal(err)
	}

	m.historyIdx = m.history.Len()

	m, _ = m.historyPrev()
	if m.mode != modeCtrl || m.input.Value() != "vars" {
		t.Errorf("after first prev: mode=%v input=%q", m.mode, m.input.Value())
	}

	m, _ = m.historyPrev()
	if m.mode != modeEval || m.input.Value() != "1+1" {
		t.Errorf("after second prev: mode=%v input=%q", m.mode, m.input.Value())
	}

	m, _ = m.historyNext()
	if m.mode != modeCtrl || m.input.Value() != "vars" {
		t.Errorf("after next: mode=%v input=%q", m.mode, m.input.Value())
	}
}

func TestHistoryStepInModeSkipsOtherMode(t *testing.T) {
	m := newTestModel(t, nil)

	for _, e := range []struct {
		line string
		mode inputMode
	}{
		{"1+1", modeEval},
		{"vars", modeCtrl},
		{"2*3", modeEval},
	} {
		if _, err := m.history.WriteWithMode(e.line, e.mode); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()
	m.mode = modeEval

	m, _ = m.historyStepInMode(-1)
	if m.input.Value() != "2*3" {
		t.Errorf("first step = %q, want 2*3", m.input.Value())
	}

	m, _ = m.historyStepInMode(-1)
	if m.input.Value() != "1+1" || m.mode != modeEval {
		t.Errorf("second step = %q (mode %v), want 1+1 in eval", m.input.Value(), m.mode)
	}
}

func TestRenderErrorCaret(t *testing.T) {
	_, err := calc.Evaluate("2+)", nil)
	if err == nil {
		t.Fatal("expected syntax error")
	}

	out := renderError("2+)", err)
	if !strings.Contains(out, "^") {
		t.Errorf("renderError missing caret:\n%s", out)
	}
}
