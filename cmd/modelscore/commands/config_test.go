package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvWithoutFile(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_env")
	t.Setenv("HF_TOKEN", "hf_env")
	t.Setenv("LOG_FILE", "/tmp/run.log")
	t.Setenv("LOG_LEVEL", "2")

	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "ghp_env", cfg.GitHubToken)
	require.Equal(t, "hf_env", cfg.HFToken)
	require.Equal(t, "/tmp/run.log", cfg.LogFile)
	require.Equal(t, 2, cfg.LogLevel)
}

func TestLoadConfigFileOverriddenByEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_file: /from/file.log\nprovider: anthropic\ngemini:\n  model: gemini-1.5-pro\n"), 0o644))

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("HF_TOKEN", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "/from/env.log")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	// Env beats the config file for bound keys.
	require.Equal(t, "/from/env.log", cfg.LogFile)
	require.Equal(t, "anthropic", cfg.Provider)
	require.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
