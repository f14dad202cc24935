package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/vernomic/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a default config file to $HOME/.config/vernomic/config.toml,
or to the path given with --config.

An existing config file is left untouched.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := cfgFile
	if configFile == "" {
		path, err := configPath()
		if err != nil {
			return err
		}
		configFile = path
	}

	w := out(cmd)

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(w, "Config already exists: %s\n", configFile)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(config.DefaultFile), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	logger.Debug("Wrote default config", zap.String("path", configFile))
	fmt.Fprintf(w, "✓ Created default config: %s\n", configFile)

	return nil
}
