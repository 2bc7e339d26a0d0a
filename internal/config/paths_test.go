package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogPath(t *testing.T) {
	t.Run("respects XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "/custom/data/lms/catalog.yaml", got)
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is empty", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")

		got := config.DefaultCatalogPath()

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		expected := filepath.Join(home, ".local", "share", "lms", "catalog.yaml")
		assert.Equal(t, expected, got)
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is not set", func(t *testing.T) {
		os.Unsetenv("XDG_DATA_HOME")

		got := config.DefaultCatalogPath()

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		expected := filepath.Join(home, ".local", "share", "lms", "catalog.yaml")
		assert.Equal(t, expected, got)
	})

	t.Run("handles XDG_DATA_HOME with trailing slash", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data/")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "/custom/data/lms/catalog.yaml", got)
	})

	t.Run("handles relative XDG_DATA_HOME path", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "relative/path")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "relative/path/lms/catalog.yaml", got)
	})

	t.Run("produces valid path even when HOME is unset", func(t *testing.T) {
		os.Unsetenv("HOME")
		os.Unsetenv("XDG_DATA_HOME")
		t.Cleanup(func() {
			if h, err := os.UserHomeDir(); err == nil {
				t.Setenv("HOME", h)
			}
		})

		got := config.DefaultCatalogPath()

		assert.True(t, filepath.IsAbs(got) || got == ".local/share/lms/catalog.yaml",
			"path should be absolute or have documented fallback, got: %s", got)
	})
}

func TestExpandPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		home     string
		expected func(home, cwd string) string
	}{
		{
			name:     "tilde expansion with subpath",
			input:    "~/projects",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "projects") },
		},
		{
			name:     "tilde only",
			input:    "~",
			home:     "/home/test",
			expected: func(home, _ string) string { return home },
		},
		{
			name:     "dot expands to current dir",
			input:    ".",
			expected: func(_, cwd string) string { return cwd },
		},
		{
			name:     "relative path becomes absolute",
			input:    "subdir/project",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "subdir/project") },
		},
		{
			name:     "absolute path unchanged",
			input:    "/absolute/path",
			expected: func(_, _ string) string { return "/absolute/path" },
		},
		{
			name:     "tilde with spaces in path",
			input:    "~/my projects/test",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "my projects/test") },
		},
		{
			name:     "tilde in middle not expanded",
			input:    "foo/~/bar",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "foo/~/bar") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.home != "" {
				t.Setenv("HOME", tt.home)
			}

			home, _ := os.UserHomeDir()

			result, err := config.ExpandPath(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected(home, cwd), result)
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		assert.Equal(t, "/custom/config/lms/config.yaml", config.DefaultSettingsPath())
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", "")

		assert.Equal(t, filepath.Join(home, ".config", "lms", "config.yaml"), config.DefaultSettingsPath())
	})
}

func TestShortenPath(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	tests := []struct {
		input    string
		expected string
	}{
		{"/home/test", "~"},
		{"/home/test/.local/share/lms/catalog.yaml", "~/.local/share/lms/catalog.yaml"},
		{"/home/tester/catalog.yaml", "/home/tester/catalog.yaml"},
		{"/etc/lms.yaml", "/etc/lms.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.ShortenPath(tt.input))
		})
	}
}
