package cmd

import (
	"bytes"
	"testing"

	"github.com/pders01/vernomic/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// resetState puts global flag and config state back to defaults
func resetState(t *testing.T) {
	t.Helper()

	logger = zap.NewNop()

	viper.Reset()
	config.SetDefaults(viper.GetViper())

	nameSuffix = ""
	nameExtension = ""
	nameTime = false
	nameNoTime = false
	nameDivider = ""
	nameDate = ""
	exportDescription = ""
	nameFile = false

	showJSON = false
	showToon = false

	cyclesJSON = false
	cyclesToon = false
	cyclesDays = false

	cfgFile = ""

	t.Cleanup(viper.Reset)
}

// newTestCmd returns a command whose output is captured
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	return c, &buf
}
