package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults(viper.GetViper())

	if got := GetDivider(); got != "_" {
		t.Errorf("GetDivider() = %q, want %q", got, "_")
	}
	if !GetDisplayTime() {
		t.Error("GetDisplayTime() = false, want true")
	}
	if got := GetSuffix(); got != "" {
		t.Errorf("GetSuffix() = %q, want empty", got)
	}
	if got := GetExtension(); got != "" {
		t.Errorf("GetExtension() = %q, want empty", got)
	}
	if got := GetExportDir(); got != "metadata/" {
		t.Errorf("GetExportDir() = %q, want %q", got, "metadata/")
	}
	if got := GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "info")
	}
}

func TestDefaultFileParses(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(DefaultFile), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read default config: %v", err)
	}

	if got := GetDivider(); got != "_" {
		t.Errorf("GetDivider() = %q, want %q", got, "_")
	}
	if !GetDisplayTime() {
		t.Error("GetDisplayTime() = false, want true")
	}
	if got := GetExportDir(); got != "metadata/" {
		t.Errorf("GetExportDir() = %q, want %q", got, "metadata/")
	}
}

func TestConfigFileOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults(viper.GetViper())

	content := `[name]
divider = "-"
display_time = false
extension = "h5"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	if got := GetDivider(); got != "-" {
		t.Errorf("GetDivider() = %q, want %q", got, "-")
	}
	if GetDisplayTime() {
		t.Error("GetDisplayTime() = true, want false")
	}
	if got := GetExtension(); got != "h5" {
		t.Errorf("GetExtension() = %q, want %q", got, "h5")
	}
	if got := GetExportDir(); got != "metadata/" {
		t.Errorf("GetExportDir() = %q, want default", got)
	}
}
