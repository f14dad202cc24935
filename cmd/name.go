package cmd

import (
	"fmt"

	"github.com/pders01/vernomic"
	"github.com/pders01/vernomic/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	nameSuffix    string
	nameExtension string
	nameTime      bool
	nameNoTime    bool
	nameDivider   string
	nameDate      string
	nameFile      bool

	exportDescription string
)

var nameCmd = &cobra.Command{
	Use:   "name <root>",
	Short: "Print the version identifier for a point in time",
	Long: `Print the identifier for the current time, or for --date.

Format:
  <root>_<yy>_<cycle>_<day>[_<HHMM>][_<suffix>]

--date accepts a date (2025-07-22), a date and time (2025-07-22 14:28,
2025-07-22T14:28:00Z) or Unix epoch seconds (1753194480, 1753194480.5).

Examples:
  vernomic name model
  vernomic name model --suffix v1 --date "2025-07-22 14:28"
  vernomic name model --no-time --divider -
  vernomic name model --time
  vernomic name model --ext h5 --file`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)

	addNameFlags(nameCmd)
	nameCmd.Flags().BoolVar(&nameFile, "file", false, "Print the file name (requires an extension)")
}

// addNameFlags registers the identifier options shared by name and export
func addNameFlags(c *cobra.Command) {
	c.Flags().StringVar(&nameSuffix, "suffix", "", "Suffix appended as the last segment")
	c.Flags().StringVar(&nameExtension, "ext", "", "File extension for the file name")
	c.Flags().BoolVar(&nameTime, "time", false, "Include the HHMM segment even when the config hides it")
	c.Flags().BoolVar(&nameNoTime, "no-time", false, "Leave the HHMM segment out of the identifier")
	c.MarkFlagsMutuallyExclusive("time", "no-time")
	c.Flags().StringVar(&nameDivider, "divider", "", "Single character between segments (default from config, \"_\")")
	c.Flags().StringVar(&nameDate, "date", "", "Date, date-time or epoch seconds (default now)")
}

func runName(cmd *cobra.Command, args []string) error {
	v, err := buildVernomic(args[0])
	if err != nil {
		return err
	}

	if nameFile {
		fileName, err := v.RequireFileName()
		if err != nil {
			return fmt.Errorf("%w (use --ext or set name.extension)", err)
		}
		fmt.Fprintln(out(cmd), fileName)
		return nil
	}

	fmt.Fprintln(out(cmd), v.Identifier())
	return nil
}

// buildVernomic merges flags over config defaults and constructs the identifier
func buildVernomic(root string) (*vernomic.Vernomic, error) {
	opts := vernomic.Options{
		Suffix:      firstNonEmpty(nameSuffix, config.GetSuffix()),
		Extension:   firstNonEmpty(nameExtension, config.GetExtension()),
		HideTime:    !displayTime(),
		Divider:     firstNonEmpty(nameDivider, config.GetDivider()),
		Description: exportDescription,
	}
	if nameDate != "" {
		opts.Date = nameDate
	}

	v, err := vernomic.NewFromOptions(root, opts)
	if err != nil {
		logger.Debug("Rejected identifier options",
			zap.String("root", root),
			zap.String("date", nameDate),
			zap.Error(err))
		return nil, err
	}

	p := v.Partition()
	logger.Debug("Built identifier",
		zap.String("identifier", v.Identifier()),
		zap.Time("time", v.Time()),
		zap.Int("day_of_year", p.DayOfYear),
		zap.Int("cycle", p.CycleNumber),
		zap.Int("day_of_cycle", p.DayOfCycle))

	return v, nil
}

// displayTime resolves --time and --no-time over name.display_time
func displayTime() bool {
	switch {
	case nameTime:
		return true
	case nameNoTime:
		return false
	default:
		return config.GetDisplayTime()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
