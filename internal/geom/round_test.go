package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 1.236, Round(1.235567774))
	assert.Equal(t, -0.001, Round(-0.0009999))
	assert.Equal(t, 50.0, Round(50.0))
	assert.Equal(t, 0.0, Round(0.0004))
}

func TestScale(t *testing.T) {
	assert.Equal(t, 3.0, Scale(0.0, 0.0, 50000.0, 3.0, 20.0))
	assert.Equal(t, 20.0, Scale(50000.0, 0.0, 50000.0, 3.0, 20.0))
	assert.InDelta(t, 4.7, Scale(5000.0, 0.0, 50000.0, 3.0, 20.0), 1e-9)
}
