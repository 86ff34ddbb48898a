package journal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operaciones.log")
	j, err := New(path)
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	for i := 0; i < 5; i++ {
		j.Info("operacion-%d", i)
	}
	lines := j.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"operacion-2", "operacion-3", "operacion-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestEntriesCarryLevelAndID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operaciones.log")
	j, err := New(path)
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	j.Warn("contrato 3 por vencer")
	lines := j.Tail(1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "WARN") {
		t.Fatalf("missing level: %q", lines[0])
	}
	if !strings.Contains(lines[0], "[") || !strings.Contains(lines[0], "contrato 3 por vencer") {
		t.Fatalf("malformed entry: %q", lines[0])
	}
}

func TestTailOnMissingFile(t *testing.T) {
	j, err := New(filepath.Join(t.TempDir(), "operaciones.log"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := j.Tail(10); lines != nil {
		t.Fatalf("expected nil for empty journal, got %v", lines)
	}
}
