package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCyclesCommand(t *testing.T) {
	resetState(t)

	c, buf := newTestCmd()
	if err := runCycles(c, []string{"2025"}); err != nil {
		t.Fatalf("cycles command failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Cycles of 2025", "Amber", "Turquoise", "2025-12-31", "(29 days)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCyclesJSON(t *testing.T) {
	resetState(t)
	cyclesJSON = true
	cyclesDays = true

	c, buf := newTestCmd()
	if err := runCycles(c, []string{"2024"}); err != nil {
		t.Fatalf("cycles command failed: %v", err)
	}

	var report cyclesReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if len(report.Cycles) != 13 {
		t.Fatalf("expected 13 cycles, got %d", len(report.Cycles))
	}
	if len(report.DayNames) != 28 {
		t.Errorf("expected 28 day names, got %d", len(report.DayNames))
	}

	last := report.Cycles[12]
	if last.Days != 30 || last.Last != "2024-12-31" {
		t.Errorf("last cycle = %+v, want 30 days ending 2024-12-31", last)
	}

	total := 0
	for _, c := range report.Cycles {
		total += c.Days
	}
	if total != 366 {
		t.Errorf("cycles cover %d days, want 366", total)
	}
}

func TestCyclesToon(t *testing.T) {
	resetState(t)
	cyclesToon = true

	c, buf := newTestCmd()
	if err := runCycles(c, []string{"2025"}); err != nil {
		t.Fatalf("cycles command failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Indigo") {
		t.Errorf("toon output missing cycle name:\n%s", buf.String())
	}
}

func TestCyclesInvalidYear(t *testing.T) {
	resetState(t)

	for _, arg := range []string{"abc", "0", "10000"} {
		if err := runCycles(nil, []string{arg}); err == nil {
			t.Errorf("expected error for year %q", arg)
		}
	}
}
