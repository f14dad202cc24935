package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/vernomic"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showToon bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show an exported metadata file",
	Long: `Display the metadata written by "vernomic export".

Examples:
  vernomic show metadata/model_25_Indigo_Duck_1428.yaml
  vernomic show out/run.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showToon, "toon", false, "Output in LLM-friendly toon format")
}

func runShow(cmd *cobra.Command, args []string) error {
	meta, err := vernomic.ReadMetadata(args[0])
	if err != nil {
		return err
	}

	w := out(cmd)

	if showJSON {
		output, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	if showToon {
		output, err := gotoon.Encode(meta)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(w, output)
		return nil
	}

	fmt.Fprintf(w, "Identifier:    %s\n", meta.Identifier)
	fmt.Fprintf(w, "File Name:     %s\n", meta.FileName)
	fmt.Fprintf(w, "Root:          %s\n", meta.RootName)
	if meta.SuffixName != "" {
		fmt.Fprintf(w, "Suffix:        %s\n", meta.SuffixName)
	}
	if meta.FileExtension != "" {
		fmt.Fprintf(w, "Extension:     %s\n", meta.FileExtension)
	}
	fmt.Fprintf(w, "Timestamp:     %s\n", meta.Timestamp)
	fmt.Fprintf(w, "Day of Year:   %d\n", meta.DayOfYear)
	fmt.Fprintf(w, "Cycle:         %d (%s)\n", meta.CycleNumber, meta.CycleName)
	fmt.Fprintf(w, "Day of Cycle:  %d (%s)\n", meta.DayOfCycle, meta.DayName)
	fmt.Fprintf(w, "Version Time:  %s\n", meta.VersionTime)

	if meta.Description != "" {
		fmt.Fprintf(w, "\nDescription:\n%s\n", meta.Description)
	}

	return nil
}
