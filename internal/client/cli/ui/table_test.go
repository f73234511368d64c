package ui

import (
	"strings"
	"testing"
)

func TestTableRendersHeaderAndRows(t *testing.T) {
	table := NewTable([]string{"NAME", "VALUE"}).AddRow([]string{":method", "GET"})
	out := table.Render()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, ":method") {
		t.Fatalf("render missing expected content: %q", out)
	}
}

func TestTableEmptyRendersNothing(t *testing.T) {
	table := NewTable([]string{"NAME", "VALUE"})
	if out := table.Render(); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}

func TestTableTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("a", 100)
	table := NewTable([]string{"VALUE"}).WithMaxCellWidth(10).AddRow([]string{long})
	out := table.Render()
	if strings.Contains(out, long) {
		t.Fatalf("expected value to be truncated, got %q", out)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected ellipsis marker in output: %q", out)
	}
}

func TestTableNoTruncationByDefault(t *testing.T) {
	long := strings.Repeat("b", 200)
	table := NewTable([]string{"VALUE"}).AddRow([]string{long})
	if out := table.Render(); !strings.Contains(out, long) {
		t.Fatalf("expected untruncated value in output")
	}
}
