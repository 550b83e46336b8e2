package geom

import "math"

// Round rounds a value to 3 decimal digits. All values are passed
// through it before being formatted into G-code or comments, which
// keeps floating point noise out of the emitted text.
func Round(value float64) float64 {
	return math.Round(value*1000.0) / 1000.0
}

// Scale linearly rescales x from the range [inMin, inMax] to the
// range [outMin, outMax].
func Scale(x, inMin, inMax, outMin, outMax float64) float64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
