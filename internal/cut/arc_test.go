package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tirithen/cnccoder/internal/geom"
)

func TestArcClockwise(t *testing.T) {
	arc := NewArc(
		geom.V3(10.0, 0.0, -1.0),
		geom.V3(-10.0, 0.0, -1.0),
		geom.V3(0.0, 0.0, -1.0),
		geom.AxisZ,
		geom.Clockwise,
	)

	lines := render(t, arc, metricContext())

	assert.Equal(t, []string{
		"",
		";(Cut arc clockwise at axis Z, from: x = 10, y = 0, z = -1, to: x = -10, y = 0, z = -1)",
		"G0 Z10",
		"G0 X10 Y0",
		"G1 Z-1 F400",
		"G17",
		"G2 X-10 Y0 Z-1 I-10 J0 K0 F400",
		"G17",
		"G0 Z10",
	}, lines)
}

func TestArcAroundXSelectsYZPlane(t *testing.T) {
	arc := NewArc(
		geom.V3(0.0, 10.0, 0.0),
		geom.V3(0.0, -10.0, 0.0),
		geom.Vector3{},
		geom.AxisX,
		geom.Counterclockwise,
	)

	lines := render(t, arc, metricContext())

	assert.Equal(t, "G19", lines[5])
	assert.Equal(t, "G3 X0 Y-10 Z0 I0 J-10 K0 F400", lines[6])
	assert.Equal(t, "G17", lines[7])
}

func TestArcCenterDistanceMismatch(t *testing.T) {
	arc := NewArc(
		geom.V3(10.0, 0.0, 0.0),
		geom.V3(-11.0, 0.0, 0.0),
		geom.Vector3{},
		geom.AxisZ,
		geom.Clockwise,
	)

	err := renderError(t, arc, metricContext())

	assert.True(t, IsGeometryError(err, CodeArcMismatch))
	assert.Contains(t, err.Error(), "must be equal")
}

func TestArcBoundsCoverFullCircle(t *testing.T) {
	arc := NewArc(
		geom.V3(10.0, 0.0, 0.0),
		geom.V3(-10.0, 0.0, 0.0),
		geom.Vector3{},
		geom.AxisZ,
		geom.Clockwise,
	)

	bounds := arc.Bounds()

	assert.Equal(t, geom.V3(-10.0, -10.0, -10.0), bounds.Min)
	assert.Equal(t, geom.V3(10.0, 10.0, 10.0), bounds.Max)
}
