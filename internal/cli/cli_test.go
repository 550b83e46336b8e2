package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = `
name: bracket
units: metric
z_safe: 10
z_tool_change: 50
tools:
  end_mill:
    shape: cylindrical
    length: 50
    diameter: 4
    spindle_speed: 5000
    feed_rate: 400
operations:
  - tool: end_mill
    cut:
      type: drill
      start: [10, 10, 0]
      end_z: -5
`

func writeJob(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "cnccoder", cmd.Name())

	for _, name := range []string{"compile", "validate", "tool"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoErrorf(t, err, "command %s should exist", name)
		assert.Equal(t, name, subCmd.Name())
	}

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
}

func TestCompileWritesProjectFiles(t *testing.T) {
	jobPath := writeJob(t, sampleJob)
	outDir := t.TempDir()

	output, err := execute(t, "compile", jobPath, "--out", outDir)
	require.NoError(t, err)

	assert.Contains(t, output, "wrote "+filepath.Join(outDir, "bracket.gcode"))
	assert.Contains(t, output, "wrote "+filepath.Join(outDir, "bracket.camotics"))
	assert.Contains(t, output, "tools: 1")

	gcode, err := os.ReadFile(filepath.Join(outDir, "bracket.gcode"))
	require.NoError(t, err)
	assert.Contains(t, string(gcode), "T1 M6\n")
	assert.Contains(t, string(gcode), ";(Program: bracket)\n")
	assert.Contains(t, string(gcode), ";(Created at: ", "compile stamps the program metadata")

	simulation, err := os.ReadFile(filepath.Join(outDir, "bracket.camotics"))
	require.NoError(t, err)
	assert.Contains(t, string(simulation), `"bracket.gcode"`)
}

func TestCompileUnsafeJob(t *testing.T) {
	jobPath := writeJob(t, `
name: unsafe
units: metric
z_safe: 1
z_tool_change: 50
tools:
  end_mill:
    shape: cylindrical
    length: 50
    diameter: 4
    spindle_speed: 5000
    feed_rate: 400
operations:
  - tool: end_mill
    cut:
      type: drill
      start: [0, 0, 3]
      end_z: -1
`)

	_, err := execute(t, "compile", jobPath, "--out", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "unsafe program")
}

func TestCompileMissingJobFile(t *testing.T) {
	_, err := execute(t, "compile", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateReportsSummary(t *testing.T) {
	jobPath := writeJob(t, sampleJob)

	output, err := execute(t, "validate", jobPath)
	require.NoError(t, err)
	assert.Contains(t, output, "is valid")
	assert.Contains(t, output, "work area:")
	assert.Contains(t, output, "tools: 1")
}

func TestValidateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(jobPath, []byte(sampleJob), 0644))

	_, err := execute(t, "validate", jobPath)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the job file itself remains")
}

func TestToolCatalogRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tools.db")

	output, err := execute(t, "tool", "add", "end mill 4mm", "--db", db,
		"--length", "50", "--diameter", "4", "--spindle-speed", "5000", "--feed-rate", "400")
	require.NoError(t, err)
	assert.Contains(t, output, "stored end mill 4mm")

	output, err = execute(t, "tool", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, output, "end mill 4mm: type = Cylindrical, diameter = 4 mm")

	output, err = execute(t, "tool", "rm", "end mill 4mm", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, output, "removed end mill 4mm")

	output, err = execute(t, "tool", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, output, "catalog is empty")
}

func TestToolCommandsRequireCatalog(t *testing.T) {
	_, err := execute(t, "tool", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db")
}

func TestCompileResolvesCatalogTools(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tools.db")
	_, err := execute(t, "tool", "add", "end mill 4mm", "--db", db,
		"--length", "50", "--diameter", "4", "--spindle-speed", "5000", "--feed-rate", "400")
	require.NoError(t, err)

	jobPath := writeJob(t, `
name: bracket
units: metric
z_safe: 10
z_tool_change: 50
tools:
  end_mill:
    catalog: end mill 4mm
operations:
  - tool: end_mill
    cut:
      type: drill
      start: [10, 10, 0]
      end_z: -5
`)
	outDir := t.TempDir()

	_, err = execute(t, "compile", jobPath, "--db", db, "--out", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "bracket.gcode"))
}
