package gcode

import (
	"strconv"

	"github.com/tirithen/cnccoder/internal/geom"
)

// Number is an optional numeric instruction parameter. The zero value
// is absent and renders nothing.
type Number struct {
	value float64
	set   bool
}

// Num creates a present Number holding value.
func Num(value float64) Number {
	return Number{value: value, set: true}
}

// Set reports whether the parameter carries a value.
func (n Number) Set() bool {
	return n.set
}

// Value returns the held value, or zero when absent.
func (n Number) Value() float64 {
	return n.value
}

// formatFloat renders a value rounded to micrometer precision using the
// shortest decimal form, so 50.0 becomes "50" and 2.4505 becomes "2.451".
func formatFloat(value float64) string {
	return strconv.FormatFloat(geom.Round(value), 'f', -1, 64)
}
