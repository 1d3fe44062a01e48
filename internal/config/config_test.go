package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Credential())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestCredential_Precedence(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "api key only", cfg: Config{APIKey: "a"}, want: "a"},
		{name: "gemini key only", cfg: Config{GeminiAPIKey: "g"}, want: "g"},
		{name: "both set", cfg: Config{APIKey: "a", GeminiAPIKey: "g"}, want: "a"},
		{name: "blank api key falls through", cfg: Config{APIKey: "  ", GeminiAPIKey: "g"}, want: "g"},
		{name: "none", cfg: Config{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Credential())
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("API_KEY", "")
	// godotenv.Load does not override variables that are already set,
	// so make sure ours is unset rather than empty.
	require.NoError(t, os.Unsetenv("API_KEY"))
	t.Cleanup(func() { os.Unsetenv("API_KEY") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("API_KEY=from-file\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Credential())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}
