package config

import (
	"github.com/spf13/viper"
)

// Keys recognised in the config file and as VERNOMIC_* environment variables
const (
	KeyDivider     = "name.divider"
	KeyDisplayTime = "name.display_time"
	KeySuffix      = "name.suffix"
	KeyExtension   = "name.extension"
	KeyExportDir   = "export.dir"
	KeyLogLevel    = "log.level"
)

// EnvPrefix is prepended to environment variable overrides
const EnvPrefix = "VERNOMIC"

// SetDefaults registers the default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDivider, "_")
	v.SetDefault(KeyDisplayTime, true)
	v.SetDefault(KeySuffix, "")
	v.SetDefault(KeyExtension, "")
	v.SetDefault(KeyExportDir, "metadata/")
	v.SetDefault(KeyLogLevel, "info")
}

// DefaultFile is the content written by `vernomic init`
const DefaultFile = `[name]
divider = "_"
display_time = true
suffix = ""
extension = ""

[export]
dir = "metadata/"

[log]
level = "info"
`

// GetDivider returns the default segment divider
func GetDivider() string {
	return viper.GetString(KeyDivider)
}

// GetDisplayTime reports whether identifiers include HHMM by default
func GetDisplayTime() bool {
	return viper.GetBool(KeyDisplayTime)
}

// GetSuffix returns the default suffix name
func GetSuffix() string {
	return viper.GetString(KeySuffix)
}

// GetExtension returns the default file extension
func GetExtension() string {
	return viper.GetString(KeyExtension)
}

// GetExportDir returns the default export destination
func GetExportDir() string {
	return viper.GetString(KeyExportDir)
}

// GetLogLevel returns the configured log level name
func GetLogLevel() string {
	return viper.GetString(KeyLogLevel)
}
