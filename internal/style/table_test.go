package style

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	out := NewTable("NAME", "VALUE").
		AddRow("short", "1").
		AddRow("much-longer-name", "2").
		Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	// The VALUE column must start at the same offset in both rows.
	first := strings.Index(lines[1], "1")
	second := strings.Index(lines[2], "2")
	if first != second {
		t.Errorf("columns misaligned: %d vs %d\n%s", first, second, out)
	}
}

func TestTablePadsShortRows(t *testing.T) {
	out := NewTable("A", "B", "C").AddRow("only-one").Render()
	if !strings.Contains(out, "only-one") {
		t.Errorf("row missing:\n%s", out)
	}
}

func TestEmptyTable(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}
