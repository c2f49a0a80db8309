package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/layout"
)

func TestLayout_Tree(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "layout")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "SmartClimateForecast/"))
	assert.Contains(t, out, "scripts/")
	assert.Contains(t, out, "retrain_model.sh")
	assert.Contains(t, out, "payload")
}

func TestLayout_YAML(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "layout", "-o", "yaml")
	require.NoError(t, err)

	var m layout.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "SmartClimateForecast", m.Project)
	assert.Len(t, m.Entries, 88)
}

func TestLayout_JSONWithMatch(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "layout", "-o", "json", "--match", "scripts/*.sh")
	require.NoError(t, err)

	var m layout.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	require.Len(t, m.Entries, 4)
	for _, e := range m.Entries {
		assert.True(t, e.Executable, e.Path)
		assert.Equal(t, layout.OriginExtended, e.Origin, e.Path)
	}
}

func TestLayout_MatchDoubleStar(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "layout", "-o", "json", "--match", "**/main.py")
	require.NoError(t, err)

	var m layout.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, []string{"app/main.py", "main.py"}, m.Paths())
}

func TestLayout_Table(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "layout", "-o", "table", "--match", "Dockerfile")
	require.NoError(t, err)

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "ORIGIN")
	assert.Contains(t, out, "Dockerfile")
	assert.Contains(t, out, "0644")
}

func TestLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown format", []string{"layout", "-o", "xml"}, oerrors.ExitValidationError},
		{"bad pattern", []string{"layout", "--match", "src/[unclosed"}, oerrors.ExitValidationError},
		{"no match", []string{"layout", "--match", "**/*.go"}, oerrors.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}
