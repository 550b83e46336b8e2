package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tirithen/cnccoder/internal/geom"
)

func TestLineCut(t *testing.T) {
	lines := render(t, NewLine(geom.V3(1.0, 2.0, 0.5), geom.V3(5.0, -2.0, -0.5)), metricContext())

	assert.Equal(t, []string{
		"",
		";(Cut line from: x = 1, y = 2, z = 0.5, to: x = 5, y = -2, z = -0.5)",
		"G0 Z10",
		"G0 X1 Y2",
		"G1 Z0.5 F400",
		"G1 X5 Y-2 Z-0.5",
		"G0 Z10",
	}, lines)
}

func TestLineBounds(t *testing.T) {
	bounds := NewLine(geom.V3(5.0, -2.0, 1.0), geom.V3(1.0, 2.0, -1.0)).Bounds()

	assert.Equal(t, geom.V3(1.0, -2.0, -1.0), bounds.Min)
	assert.Equal(t, geom.V3(5.0, 2.0, 1.0), bounds.Max)
}
