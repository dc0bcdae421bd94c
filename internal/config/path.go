package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName   = "textwrap"
	EnvDir    = "TEXTWRAP_CONFIG_DIR"
	EnvPrefix = "TEXTWRAP_"
)

// DefaultFiles lists the names LoadDefault looks for in Dir, in order.
var DefaultFiles = []string{"config.toml", "config.yaml", "config.yml"}

func Dir() string {
	if override := os.Getenv(EnvDir); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", appName)
	default:
		return filepath.Join(home, ".config", appName)
	}
}
