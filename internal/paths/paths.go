// Package paths resolves the per-user directories animeseek stores its
// config and logs in.
package paths

import (
	"os"
	"path/filepath"
)

// UserConfigDir returns the base config directory. XDG_CONFIG_HOME wins
// when set; otherwise ~/.config.
func UserConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// AnimeseekDir returns the animeseek config directory.
// This is ~/.config/animeseek for the current user.
func AnimeseekDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "animeseek"), nil
}

// ConfigPath returns the path to the animeseek config file.
// This is ~/.config/animeseek/config.toml.
func ConfigPath() (string, error) {
	dir, err := AnimeseekDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the default log file path.
// This is ~/.config/animeseek/animeseek.log.
func LogPath() (string, error) {
	dir, err := AnimeseekDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "animeseek.log"), nil
}
