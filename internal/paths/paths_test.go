package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUserConfigDir_XDG(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	got, err := UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() error = %v", err)
	}
	if got != "/tmp/xdg-test" {
		t.Errorf("UserConfigDir() = %q, want %q", got, "/tmp/xdg-test")
	}
}

func TestUserConfigDir_Default(t *testing.T) {
	os.Unsetenv("XDG_CONFIG_HOME")

	got, err := UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if got != filepath.Join(home, ".config") {
		t.Errorf("UserConfigDir() = %q, want %q", got, filepath.Join(home, ".config"))
	}
}

func TestConfigPath(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if got != "/tmp/xdg-test/animeseek/config.toml" {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestLogPath(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	got, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if got != "/tmp/xdg-test/animeseek/animeseek.log" {
		t.Errorf("LogPath() = %q", got)
	}
}
