package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tirithen/cnccoder/internal/geom"
)

func TestFrameHelicalDescent(t *testing.T) {
	lines := render(t, NewFrame(geom.V3(0.0, 0.0, 1.0), geom.V2(10.0, 10.0), 0.0, 1.0), metricContext())

	assert.Equal(t, []string{
		"",
		";(Cut frame: x = 0, y = 0, size = {x: 10, y: 10})",
		"G0 Z10",
		"G0 X0 Y0",
		"G1 Z1 F400",
		"G1 X10 Z0.75",
		"G1 Y10 Z0.5",
		"G1 X0 Z0.25",
		"G1 Y0 Z0",
		"G1 X10 Z0",
		"G1 Y10 Z0",
		"G1 X0 Z0",
		"G1 Y0 Z0",
		"G1 X10",
		"G0 Z10",
		"G0 X0 Y0",
	}, lines)
}

func TestFrameInnerCompensationShrinksOutline(t *testing.T) {
	lines := render(t, FrameInner(geom.V3(0.0, 0.0, 0.0), geom.V2(10.0, 10.0), 0.0, 1.0), metricContext())

	assert.Equal(t, ";(Cut frame: x = 2, y = 2, size = {x: 6, y: 6})", lines[1])
	assert.Equal(t, "G0 X2 Y2", lines[3])
}

func TestFrameToolTooWide(t *testing.T) {
	err := renderError(t, NewFrame(geom.Vector3{}, geom.V2(3.0, 10.0), -1.0, 1.0), metricContext())

	assert.True(t, IsGeometryError(err, CodeToolTooWide))
	assert.Contains(t, err.Error(), "x dimension")

	err = renderError(t, NewFrame(geom.Vector3{}, geom.V2(10.0, 3.0), -1.0, 1.0), metricContext())

	assert.True(t, IsGeometryError(err, CodeToolTooWide))
	assert.Contains(t, err.Error(), "y dimension")
}

func TestFrameBounds(t *testing.T) {
	bounds := NewFrame(geom.V3(1.0, 2.0, 3.0), geom.V2(10.0, 20.0), -1.0, 1.0).Bounds()

	assert.Equal(t, geom.V3(1.0, 2.0, -1.0), bounds.Min)
	assert.Equal(t, geom.V3(11.0, 22.0, 3.0), bounds.Max)
}
