package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTablesAreValid(t *testing.T) {
	require.NoError(t, Validate(Base()))
	require.NoError(t, Validate(Extended()))
	require.NoError(t, ValidatePayloads(Payloads()))
}

func TestBaseAndExtendedCounts(t *testing.T) {
	count := func(entries []DirectoryEntry) int {
		n := 0
		for _, e := range entries {
			n += len(e.Files)
		}
		return n
	}

	assert.Equal(t, 45, count(Base()))
	assert.Equal(t, 35, count(Extended()))
	assert.Len(t, Payloads(), 9)
}

func TestBaseReturnsCopy(t *testing.T) {
	b := Base()
	b[0].Files[0] = "mutated.yml"
	b[0].Dir = "elsewhere"

	again := Base()
	assert.Equal(t, ".github/workflows", again[0].Dir)
	assert.Equal(t, "ci-cd.yml", again[0].Files[0])
}

func TestDirectoryEntryPaths(t *testing.T) {
	e := DirectoryEntry{Dir: "experiments", Files: []string{"README.md", "runs/.gitkeep"}}
	assert.Equal(t, []string{"experiments/README.md", "experiments/runs/.gitkeep"}, e.Paths())
}

func TestIsShellScript(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"start_local.sh", true},
		{"scripts/run_tests.sh", true},
		{"run.bash", false},
		{"shell.sh.bak", false},
		{".env.test", false},
		{"sh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsShellScript(tt.name))
		})
	}
}

func TestScriptPlaceholder(t *testing.T) {
	got := ScriptPlaceholder("start_local.sh")
	assert.Equal(t, "#!/usr/bin/env bash\necho 'Running start_local.sh'", got)
	assert.False(t, strings.HasSuffix(got, "\n"), "placeholder has no trailing newline")
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"app/main.py", false},
		{".github/workflows/ci-cd.yml", false},
		{"experiments/runs/.gitkeep", false},
		{"", true},
		{"/etc/passwd", true},
		{"../outside", true},
		{"app/../../outside", true},
		{"./app", true},
		{"app//main.py", true},
		{`app\main.py`, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRejectsEscapingFile(t *testing.T) {
	err := Validate([]DirectoryEntry{{Dir: "scripts", Files: []string{"../../evil.sh"}}})
	assert.Error(t, err)
}

func TestPayloadOrderAndContent(t *testing.T) {
	got := Payloads()
	require.Len(t, got, 9)

	want := []string{
		"app/main.py",
		"requirements.txt",
		"Dockerfile",
		".github/workflows/ci-cd.yml",
		"render.yaml",
		"pytest.ini",
		"setup.py",
		"main.py",
		"README.md",
	}
	for i, p := range got {
		assert.Equal(t, want[i], p.Path)
		assert.NotEmpty(t, p.Content, "payload %s is empty", p.Path)
		assert.True(t, strings.HasSuffix(p.Content, "\n"), "payload %s ends with newline", p.Path)
	}

	req, ok := Payload("requirements.txt")
	require.True(t, ok)
	assert.Equal(t, "fastapi\nuvicorn\npandas\nnumpy\nscikit-learn\njinja2\npyyaml\npytest\nmlflow\nprometheus-client\n", req)

	appMain, ok := Payload("app/main.py")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(appMain, "from fastapi import FastAPI, Request\n"))
	assert.Contains(t, appMain, `app = FastAPI(title="SmartClimateForecast")`)

	readme, ok := Payload("README.md")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(readme, "# SmartClimateForecast — Extended Modules Overview\n"))

	_, ok = Payload("nope.txt")
	assert.False(t, ok)
}

func TestBuildManifest(t *testing.T) {
	m := BuildManifest()

	assert.Equal(t, ProjectName, m.Project)
	assert.Len(t, m.Entries, 88)
	assert.Len(t, m.Dirs(), 38)

	byPath := make(map[string]ManifestEntry)
	for _, e := range m.Entries {
		byPath[e.Path] = e
	}

	// payload wins over the base entry for the workflow file
	ci := byPath[".github/workflows/ci-cd.yml"]
	assert.Equal(t, OriginPayload, ci.Origin)
	assert.Positive(t, ci.Size)

	script := byPath["scripts/start_local.sh"]
	assert.Equal(t, OriginExtended, script.Origin)
	assert.True(t, script.Executable)
	assert.Equal(t, len(ScriptPlaceholder("start_local.sh")), script.Size)

	gitkeep := byPath["experiments/runs/.gitkeep"]
	assert.Equal(t, OriginExtended, gitkeep.Origin)
	assert.Zero(t, gitkeep.Size)

	assert.Equal(t, OriginBase, byPath["tests/test_utils.py"].Origin)

	paths := m.Paths()
	for i := 1; i < len(paths); i++ {
		assert.Less(t, paths[i-1], paths[i], "manifest must be sorted")
	}
}

func TestManifestFilter(t *testing.T) {
	m := BuildManifest().Filter(func(p string) bool {
		return strings.HasPrefix(p, "scripts/")
	})

	assert.Equal(t, []string{
		"scripts/backup_artifacts.sh",
		"scripts/retrain_model.sh",
		"scripts/run_tests.sh",
		"scripts/start_local.sh",
	}, m.Paths())
	assert.Equal(t, []string{"scripts"}, m.Dirs())
}
