package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/vernomic/internal/calendar"
	"github.com/spf13/cobra"
)

var (
	cyclesJSON bool
	cyclesToon bool
	cyclesDays bool
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [year]",
	Short: "List the 13 cycles of a year",
	Long: `List the cycles of a year with their names and date ranges.

The last cycle also covers day 365, and day 366 in leap years.

Examples:
  vernomic cycles
  vernomic cycles 2024
  vernomic cycles --days
  vernomic cycles 2025 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCycles,
}

func init() {
	rootCmd.AddCommand(cyclesCmd)

	cyclesCmd.Flags().BoolVar(&cyclesJSON, "json", false, "Output as JSON")
	cyclesCmd.Flags().BoolVar(&cyclesToon, "toon", false, "Output in LLM-friendly toon format")
	cyclesCmd.Flags().BoolVar(&cyclesDays, "days", false, "Also list the day names")
}

type cycleRow struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	First  string `json:"first"`
	Last   string `json:"last"`
	Days   int    `json:"days"`
}

type cyclesReport struct {
	Year     int        `json:"year"`
	Cycles   []cycleRow `json:"cycles"`
	DayNames []string   `json:"day_names,omitempty"`
}

func runCycles(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil || y < 1 || y > 9999 {
			return fmt.Errorf("invalid year: %s (use a number between 1 and 9999)", args[0])
		}
		year = y
	}

	report := buildCyclesReport(year, cyclesDays)
	w := out(cmd)

	if cyclesJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	if cyclesToon {
		output, err := gotoon.Encode(report)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(w, output)
		return nil
	}

	fmt.Fprintf(w, "Cycles of %d:\n\n", report.Year)
	for _, c := range report.Cycles {
		fmt.Fprintf(w, "  %2d  %-10s %s → %s  (%d days)\n", c.Number, c.Name, c.First, c.Last, c.Days)
	}

	if len(report.DayNames) > 0 {
		fmt.Fprintln(w, "\nDays:")
		for i, name := range report.DayNames {
			fmt.Fprintf(w, "  %2d  %s\n", i+1, name)
		}
	}

	return nil
}

func buildCyclesReport(year int, withDays bool) cyclesReport {
	report := cyclesReport{Year: year}
	for _, span := range calendar.Year(year, time.Local) {
		report.Cycles = append(report.Cycles, cycleRow{
			Number: span.Number,
			Name:   span.Name,
			First:  span.First.Format("2006-01-02"),
			Last:   span.Last.Format("2006-01-02"),
			Days:   span.Days(),
		})
	}

	if withDays {
		days := calendar.DayNames()
		report.DayNames = days[:]
	}

	return report
}
