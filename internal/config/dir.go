package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the jot configuration directory.
//
// Resolution order:
//   - $JOT_CONFIG_HOME
//   - $XDG_CONFIG_HOME/jot
//   - %AppData%/jot on Windows
//   - ~/.config/jot on macOS and Linux
func Dir() string {
	if dir := os.Getenv("JOT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jot")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "jot")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jot")
}
