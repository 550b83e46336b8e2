package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tirithen/cnccoder/internal/geom"
)

func TestPlaneSingleLayerRaster(t *testing.T) {
	lines := render(t, NewArea(geom.V3(0.0, 0.0, 1.0), geom.V2(10.0, 7.2), 0.0, 1.0), metricContext())

	assert.Equal(t, []string{
		"",
		";(Do planing at: x = 0, y = 0, size = {x: 10, y: 7.2})",
		"G0 Z10",
		"G0 X0 Y0",
		"G1 Z1 F400",
		"G1 X10 Z0",
		"G1 Y7.2",
		"G1 X0 Z0",
		"G1 Y0",
		"G1 Y0",
		"G1 X10 Z0",
		"G1 Y3.6",
		"G1 X0 Z0",
		"G0 Z0.5",
		"G0 X0 Y0 Z0.5",
		"G1 Z0",
		"G0 Z10",
	}, lines)
}

func TestPocketCompensationShrinksRectangle(t *testing.T) {
	lines := render(t, Pocket(geom.V3(0.0, 0.0, 0.0), geom.V2(20.0, 20.0), -1.0, 1.0), metricContext())

	assert.Equal(t, ";(Do planing at: x = 2, y = 2, size = {x: 16, y: 16})", lines[1])
	assert.Equal(t, "G0 X2 Y2", lines[3])
}

func TestAreaSlopedFloor(t *testing.T) {
	lines := render(t, PlaneWithSlope(geom.V3(0.0, 0.0, 1.0), geom.V2(10.0, 7.2), 0.0, -0.5, 1.0), metricContext())

	// The first perimeter side descends to the slope target, the
	// return side to the flat target.
	assert.Equal(t, "G1 X10 Z-0.5", lines[5])
	assert.Equal(t, "G1 X0 Z0", lines[7])
}

func TestAreaToolTooWide(t *testing.T) {
	err := renderError(t, NewArea(geom.Vector3{}, geom.V2(3.0, 10.0), -1.0, 1.0), metricContext())

	assert.True(t, IsGeometryError(err, CodeToolTooWide))
	assert.Contains(t, err.Error(), "x dimension")
}

func TestAreaBoundsUseDeepestFloor(t *testing.T) {
	bounds := PlaneWithSlope(geom.V3(0.0, 0.0, 1.0), geom.V2(10.0, 20.0), 0.0, -0.5, 1.0).Bounds()

	assert.Equal(t, geom.V3(0.0, 0.0, -0.5), bounds.Min)
	assert.Equal(t, geom.V3(10.0, 20.0, 1.0), bounds.Max)
}
