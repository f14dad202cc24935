package cmd

import (
	"fmt"

	"github.com/pders01/vernomic/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export <root> [destination]",
	Short: "Write the identifier metadata to a YAML file",
	Long: `Build the identifier and write its full decomposition to a YAML file.

The destination defaults to export.dir from the config ("metadata/").
  - a destination ending in "/" or naming an existing directory receives
    <identifier>.yaml
  - any other destination is a file path; ".yaml" is appended unless it
    already ends in .yaml or .yml

Missing directories are created. An existing file is overwritten.

Examples:
  vernomic export model
  vernomic export model metadata/ --suffix v1 --description "baseline"
  vernomic export model out/run --date 2025-07-22T14:28:00`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addNameFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportDescription, "description", "", "Free text stored in the metadata")
}

func runExport(cmd *cobra.Command, args []string) error {
	v, err := buildVernomic(args[0])
	if err != nil {
		return err
	}

	dest := config.GetExportDir()
	if len(args) > 1 {
		dest = args[1]
	}

	path, err := v.Export(dest)
	if err != nil {
		logger.Error("Export failed", zap.String("destination", dest), zap.Error(err))
		return err
	}

	logger.Info("Exported metadata",
		zap.String("identifier", v.Identifier()),
		zap.String("path", path))

	w := out(cmd)
	fmt.Fprintf(w, "✓ %s\n", v.Identifier())
	fmt.Fprintf(w, "  Metadata: %s\n", path)
	return nil
}
