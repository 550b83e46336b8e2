package camotics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/tool"
)

func TestProjectSerialization(t *testing.T) {
	project := Project{
		Name:           "testing",
		Units:          geom.Metric,
		ResolutionMode: ResolutionManual,
		Resolution:     0.3,
		Tools: map[int]Tool{
			1: {
				Number:   1,
				Units:    geom.Metric,
				Shape:    tool.ShapeCylindrical,
				Length:   50.0,
				Diameter: 4.0,
			},
		},
		Workpiece: Workpiece{
			Automatic: false,
			Margin:    5.0,
			Bounds: geom.Bounds{
				Min: geom.V3(-60.5, -60.5, -3.0),
				Max: geom.V3(119.5, 60.5, 0.0),
			},
		},
		Files: []string{"file.gcode"},
	}

	data, err := project.ToJSON()
	require.NoError(t, err, "serialization must not fail")

	assert.JSONEq(t, `{
		"units": "metric",
		"resolution-mode": "manual",
		"resolution": 0.3,
		"tools": {
			"1": {
				"number": 1,
				"units": "metric",
				"shape": "cylindrical",
				"length": 50.0,
				"diameter": 4.0
			}
		},
		"workpiece": {
			"automatic": false,
			"margin": 5.0,
			"bounds": {
				"min": [-60.5, -60.5, -3.0],
				"max": [119.5, 60.5, 0.0]
			}
		},
		"files": ["file.gcode"]
	}`, string(data), "project document must match the Camotics format")
}

func TestConicalToolKeepsAngle(t *testing.T) {
	conical := tool.Conical(geom.Metric, 45.0, 15.0, geom.Clockwise, 5000.0, 400.0)

	converted := ToolFrom(conical, 2)

	assert.Equal(t, tool.ShapeConical, converted.Shape, "shape carries over")
	assert.Equal(t, 45.0, converted.Angle, "angle carries over for conical tools")
	assert.Equal(t, 2, converted.Number, "number is the change position")

	data, err := (&Project{Tools: map[int]Tool{2: converted}}).ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"angle": 45`, "conical tools serialize the angle")
}

func TestCylindricalToolOmitsAngle(t *testing.T) {
	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)

	data, err := (&Project{Tools: map[int]Tool{1: ToolFrom(cutter, 1)}}).ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "angle", "cylindrical tools have no angle field")
}

func TestFromProgram(t *testing.T) {
	p := program.New(geom.Metric, 10.0, 50.0)
	cutter := tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0)

	err := p.Extend(cutter, func(context *program.Context) error {
		context.AppendCut(cut.NewPath(
			geom.V3(0.0, 0.0, 3.0),
			[]cut.Segment{cut.SegmentLine(geom.V2(0.0, 0.0), geom.V2(-28.0, -30.0))},
			-0.1,
			1.0,
		))
		context.AppendCut(cut.NewPath(
			geom.V3(0.0, 0.0, 3.0),
			[]cut.Segment{
				cut.SegmentLine(geom.V2(23.0, 12.0), geom.V2(5.0, 10.0)),
				cut.SegmentLine(geom.V2(5.0, 10.0), geom.V2(67.0, 102.0)),
				cut.SegmentLine(geom.V2(67.0, 102.0), geom.V2(23.0, 12.0)),
			},
			-0.1,
			1.0,
		))
		return nil
	})
	require.NoError(t, err, "extending with path cuts must succeed")

	project := FromProgram("test-project", p, 1.0)

	assert.Equal(t, "test-project", project.Name)
	assert.Equal(t, geom.Metric, project.Units)
	assert.Equal(t, ResolutionManual, project.ResolutionMode)
	assert.Equal(t, 1.0, project.Resolution)
	assert.Equal(t, []string{"test-project.gcode"}, project.Files)
	assert.Equal(t, map[int]Tool{1: ToolFrom(cutter, 1)}, project.Tools, "tools keyed by change position")
	assert.Equal(t, p.Bounds(), project.Workpiece.Bounds, "workpiece takes the program bounds")
	assert.False(t, project.Workpiece.Automatic)
}
