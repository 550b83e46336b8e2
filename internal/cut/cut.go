package cut

import (
	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Cut is a single machinable shape. The set of cuts is closed; all
// implementations live in this package.
type Cut interface {
	// Bounds returns the axis aligned box the cut touches.
	Bounds() geom.Bounds

	// ToInstructions emits the instruction sequence for the cut.
	ToInstructions(ctx Context) ([]gcode.Instruction, error)

	isCut()
}

// Drill creates a plunge cut straight down from start to endZ.
func Drill(start geom.Vector3, endZ float64) Circle {
	return Circle{Start: start, EndZ: endZ}
}

// NewCircle creates a circle cut centered at start where the tool
// center follows the given radius.
func NewCircle(start geom.Vector3, endZ, radius, maxStepZ float64) Circle {
	return Circle{Start: start, EndZ: endZ, Radius: radius, MaxStepZ: maxStepZ, Compensation: geom.CompensationNone}
}

// CircleInner creates a circle cut where the tool stays inside the
// radius, used for cutting holes.
func CircleInner(start geom.Vector3, endZ, radius, maxStepZ float64) Circle {
	return Circle{Start: start, EndZ: endZ, Radius: radius, MaxStepZ: maxStepZ, Compensation: geom.CompensationInner}
}

// CircleOuter creates a circle cut where the tool stays outside the
// radius, used for cutting out circular parts.
func CircleOuter(start geom.Vector3, endZ, radius, maxStepZ float64) Circle {
	return Circle{Start: start, EndZ: endZ, Radius: radius, MaxStepZ: maxStepZ, Compensation: geom.CompensationOuter}
}

// NewFrame creates a rectangular contour cut without tool compensation.
func NewFrame(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Frame {
	return Frame{Start: start, Size: size, EndZ: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationNone}
}

// FrameInner creates a rectangular contour cut with the tool inside the
// outline, used for rectangular holes.
func FrameInner(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Frame {
	return Frame{Start: start, Size: size, EndZ: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationInner}
}

// FrameOuter creates a rectangular contour cut with the tool outside
// the outline, used for cutting out rectangular parts.
func FrameOuter(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Frame {
	return Frame{Start: start, Size: size, EndZ: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationOuter}
}

// NewArea creates a rectangular surface cut without tool compensation.
func NewArea(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Area {
	return Area{Start: start, Size: size, EndZ: endZ, EndZStop: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationNone}
}

// Pocket creates an area cut with the tool kept inside the outline.
func Pocket(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Area {
	return Area{Start: start, Size: size, EndZ: endZ, EndZStop: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationInner}
}

// Plane creates an area cut that surfaces the full rectangle, with the
// tool running outside the outline.
func Plane(start geom.Vector3, size geom.Vector2, endZ, maxStepZ float64) Area {
	return Area{Start: start, Size: size, EndZ: endZ, EndZStop: endZ, MaxStepZ: maxStepZ, Compensation: geom.CompensationOuter}
}

// PlaneWithSlope creates an area cut whose floor slopes from endZ at
// the near x edge to endZStop at the far x edge.
func PlaneWithSlope(start geom.Vector3, size geom.Vector2, endZ, endZStop, maxStepZ float64) Area {
	return Area{Start: start, Size: size, EndZ: endZ, EndZStop: endZStop, MaxStepZ: maxStepZ, Compensation: geom.CompensationOuter}
}

// NewLine creates a linear cut between two points.
func NewLine(from, to geom.Vector3) Line {
	return Line{From: from, To: to}
}

// NewArc creates an arc cut around the given axis.
func NewArc(from, to, center geom.Vector3, axis geom.Axis, direction geom.Direction) Arc {
	return Arc{From: from, To: to, Center: center, Axis: axis, Direction: direction}
}

// NewPath creates a layered path cut from segments placed relative to
// start.
func NewPath(start geom.Vector3, segments []Segment, endZ, maxStepZ float64) Path {
	return Path{Start: start, Segments: segments, EndZ: endZ, MaxStepZ: maxStepZ}
}
