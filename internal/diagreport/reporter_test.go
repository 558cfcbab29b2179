package diagreport

import (
	"strings"
	"testing"

	"github.com/theQuarky/tspp/internal/position"
)

func TestReporterCounts(t *testing.T) {
	r := New(nil)
	pos := position.Position{Filename: "f.tspp", Line: 1, Column: 1}

	r.Warning(pos, "unused variable", "sem009")
	r.Error(pos, "type mismatch", "sem003")
	r.Info(pos, "fyi")

	if r.ErrorCount() != 1 {
		t.Fatalf("ErrorCount = %d, want 1", r.ErrorCount())
	}

	if r.WarningCount() != 1 {
		t.Fatalf("WarningCount = %d, want 1", r.WarningCount())
	}

	if !r.HasErrors() {
		t.Fatal("HasErrors should be true")
	}

	if len(r.Diagnostics()) != 3 {
		t.Fatalf("len(Diagnostics) = %d, want 3", len(r.Diagnostics()))
	}
}

func TestReporterClear(t *testing.T) {
	r := New(nil)
	r.Error(position.Position{Line: 1, Column: 1}, "boom")
	r.Clear()

	if r.HasErrors() || len(r.Diagnostics()) != 0 {
		t.Fatal("Clear should reset all state")
	}
}

func TestFormatIncludesCaret(t *testing.T) {
	sm := position.NewSourceMap()
	sm.AddFile("f.tspp", "let x: int = ;\n")
	r := New(sm)

	pos := position.Position{Filename: "f.tspp", Line: 1, Column: 14}
	r.Error(pos, "unexpected token", "syn001")

	out := r.Format(r.Diagnostics()[0], false)
	if !strings.Contains(out, "f.tspp:1:14: error[syn001]: unexpected token") {
		t.Fatalf("unexpected header in %q", out)
	}

	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret line in %q", out)
	}
}

func TestFormatColorOnlyWhenRequested(t *testing.T) {
	r := New(nil)
	pos := position.Position{Line: 1, Column: 1}
	r.Error(pos, "boom")

	plain := r.Format(r.Diagnostics()[0], false)
	if strings.Contains(plain, "\033[") {
		t.Fatal("plain format should not contain ANSI escapes")
	}

	colored := r.Format(r.Diagnostics()[0], true)
	if !strings.Contains(colored, "\033[31m") {
		t.Fatal("colored error format should use red")
	}
}
