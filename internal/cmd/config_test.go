package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclimate/scaffold/internal/config"
	oerrors "github.com/smartclimate/scaffold/internal/errors"
)

func TestConfigInit_DefaultLocation(t *testing.T) {
	home := isolateEnv(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)

	configFile := filepath.Join(home, ".scaffold", "config.yaml")
	assert.Contains(t, out, configFile)

	dirInfo, err := os.Stat(filepath.Dir(configFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())

	cfg, err := config.NewLoader().Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	isolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  timestamps: false\n"), 0o600))

	_, err := execute(t, "config", "init", "--config", configFile)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  timestamps: false\n", string(data))

	_, err = execute(t, "config", "init", "--config", configFile, "--force")
	require.NoError(t, err)

	cfg, err := config.NewLoader().Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestConfigVet(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		code    int
	}{
		{"valid", ptr("log:\n  timestamps: false\n"), oerrors.ExitSuccess},
		{"root key", ptr("root: ./forecast\n"), oerrors.ExitValidationError},
		{"missing file", nil, oerrors.ExitNotFound},
		{"unknown key", ptr("registry: ghcr.io\n"), oerrors.ExitValidationError},
		{"wrong type", ptr("log:\n  timestamps: often\n"), oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(configFile, []byte(*tt.content), 0o600))
			}

			out, err := execute(t, "config", "vet", "--config", configFile)
			if tt.code == oerrors.ExitSuccess {
				require.NoError(t, err)
				assert.Contains(t, out, "Configuration is valid")
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

func TestConfigVet_AcceptsInitOutput(t *testing.T) {
	isolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	_, err := execute(t, "config", "init", "--config", configFile)
	require.NoError(t, err)

	_, err = execute(t, "config", "vet", "--config", configFile)
	assert.NoError(t, err)
}

func TestConfigCommands_WithoutHome(t *testing.T) {
	for _, sub := range []string{"init", "vet"} {
		t.Run(sub, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("HOME", "")

			_, err := execute(t, "config", sub)
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitNotFound, exitCode(t, err))
			assert.Contains(t, err.Error(), "--config")
		})
	}
}

func ptr(s string) *string {
	return &s
}
