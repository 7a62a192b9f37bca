package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Name", "Episode"},
		[][]string{{"[SubsPlease] Frieren - 05", "5"}, {"[Judas] Frieren S01"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	if !strings.Contains(out, "Name") || !strings.Contains(out, "Episode") {
		t.Errorf("missing headers in output:\n%s", out)
	}
	if !strings.Contains(out, "[SubsPlease] Frieren - 05") {
		t.Errorf("missing row in output:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
