package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirithen/cnccoder/internal/camotics"
	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/tool"
)

func pathProgram(t *testing.T, name string) *program.Program {
	t.Helper()

	p := program.New(geom.Metric, 10.0, 50.0)
	p.SetMeta(program.Meta{Name: name})

	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)
	err := p.Extend(cutter, func(context *program.Context) error {
		context.AppendCut(cut.NewPath(
			geom.V3(0.0, 0.0, 3.0),
			[]cut.Segment{cut.SegmentLine(geom.V2(0.0, 0.0), geom.V2(-28.0, -30.0))},
			-0.1,
			1.0,
		))
		return nil
	})
	require.NoError(t, err, "building the program must succeed")
	return p
}

func TestWriteProducesBothFiles(t *testing.T) {
	dir := t.TempDir()
	p := pathProgram(t, "test-temp")

	require.NoError(t, Write(p, 0.5, dir))

	gcode, err := os.ReadFile(filepath.Join(dir, "test-temp.gcode"))
	require.NoError(t, err, "gcode file must exist")

	rendered, err := p.ToGcode()
	require.NoError(t, err)
	assert.Equal(t, rendered, string(gcode), "file holds the rendered program")

	simulation, err := os.ReadFile(filepath.Join(dir, "test-temp.camotics"))
	require.NoError(t, err, "camotics file must exist")

	expected, err := camotics.FromProgram("test-temp", p, 0.5).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(simulation))
	assert.Contains(t, string(simulation), `"test-temp.gcode"`, "project references the gcode file")
}

func TestWriteUsesDefaultName(t *testing.T) {
	dir := t.TempDir()
	p := pathProgram(t, "")

	gcodePath, camoticsPath := Files(p, dir)
	assert.Equal(t, filepath.Join(dir, "untitled.gcode"), gcodePath)
	assert.Equal(t, filepath.Join(dir, "untitled.camotics"), camoticsPath)

	require.NoError(t, Write(p, 1.0, dir))
	assert.FileExists(t, gcodePath)
	assert.FileExists(t, camoticsPath)
}

func TestWriteRejectsUnsafeProgram(t *testing.T) {
	dir := t.TempDir()

	p := program.New(geom.Metric, 1.0, 50.0)
	p.SetMeta(program.Meta{Name: "unsafe"})
	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)
	err := p.Extend(cutter, func(context *program.Context) error {
		context.AppendCut(cut.NewPath(
			geom.V3(0.0, 0.0, 3.0),
			[]cut.Segment{cut.SegmentLine(geom.V2(0.0, 0.0), geom.V2(10.0, 0.0))},
			-0.1,
			1.0,
		))
		return nil
	})
	require.NoError(t, err)

	err = Write(p, 0.5, dir)
	require.Error(t, err, "unsafe travel height must abort the write")
	assert.True(t, program.IsSafetyError(err), "error keeps its safety classification")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written when rendering fails")
}
