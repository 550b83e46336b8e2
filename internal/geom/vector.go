package geom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vector2 represents a 2D point in space.
type Vector2 struct {
	X float64
	Y float64
}

// V2 creates a 2D point from x and y coordinates.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// MinVector2 returns a 2D point with both coordinates set to
// -math.MaxFloat64.
func MinVector2() Vector2 {
	return Vector2{X: -math.MaxFloat64, Y: -math.MaxFloat64}
}

// MaxVector2 returns a 2D point with both coordinates set to
// math.MaxFloat64.
func MaxVector2() Vector2 {
	return Vector2{X: math.MaxFloat64, Y: math.MaxFloat64}
}

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector2) DistanceTo(to Vector2) float64 {
	return math.Sqrt((v.X-to.X)*(v.X-to.X) + (v.Y-to.Y)*(v.Y-to.Y))
}

// Angle computes the angle in radians with respect to the positive
// x axis, in the range [0, 2π).
func (v Vector2) Angle() float64 {
	return math.Atan2(-v.X, -v.Y) + math.Pi
}

// AngleDegrees computes the angle in degrees with respect to the
// positive x axis.
func (v Vector2) AngleDegrees() float64 {
	return v.Angle() * 180.0 / math.Pi
}

// AddX returns a new point with the x coordinate incremented by value.
func (v Vector2) AddX(value float64) Vector2 {
	v.X += value
	return v
}

// AddY returns a new point with the y coordinate incremented by value.
func (v Vector2) AddY(value float64) Vector2 {
	v.Y += value
	return v
}

// Add returns the component-wise sum of two points.
func (v Vector2) Add(rhs Vector2) Vector2 {
	return Vector2{X: v.X + rhs.X, Y: v.Y + rhs.Y}
}

// Sub returns the component-wise difference of two points.
func (v Vector2) Sub(rhs Vector2) Vector2 {
	return Vector2{X: v.X - rhs.X, Y: v.Y - rhs.Y}
}

// Mul returns the component-wise product of two points.
func (v Vector2) Mul(rhs Vector2) Vector2 {
	return Vector2{X: v.X * rhs.X, Y: v.Y * rhs.Y}
}

// Div returns the component-wise quotient of two points.
func (v Vector2) Div(rhs Vector2) Vector2 {
	return Vector2{X: v.X / rhs.X, Y: v.Y / rhs.Y}
}

// String renders the point with coordinates rounded for display,
// matching the form used inside generated G-code comments.
func (v Vector2) String() string {
	return fmt.Sprintf("{x: %v, y: %v}", Round(v.X), Round(v.Y))
}

// MarshalJSON serializes the point as a [x, y] tuple.
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON deserializes the point from a [x, y] tuple.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	var tuple [2]float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	v.X, v.Y = tuple[0], tuple[1]
	return nil
}

// Vector3 represents a 3D point in space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// V3 creates a 3D point from x, y and z coordinates.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// MinVector3 returns a 3D point with all coordinates set to
// -math.MaxFloat64.
func MinVector3() Vector3 {
	return Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
}

// MaxVector3 returns a 3D point with all coordinates set to
// math.MaxFloat64.
func MaxVector3() Vector3 {
	return Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
}

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector3) DistanceTo(to Vector3) float64 {
	return math.Sqrt((v.X-to.X)*(v.X-to.X) + (v.Y-to.Y)*(v.Y-to.Y) + (v.Z-to.Z)*(v.Z-to.Z))
}

// XY projects the point onto the xy plane.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// XZ projects the point onto the xz plane.
func (v Vector3) XZ() Vector2 {
	return Vector2{X: v.X, Y: v.Z}
}

// YZ projects the point onto the yz plane.
func (v Vector3) YZ() Vector2 {
	return Vector2{X: v.Y, Y: v.Z}
}

// AddX returns a new point with the x coordinate incremented by value.
func (v Vector3) AddX(value float64) Vector3 {
	v.X += value
	return v
}

// AddY returns a new point with the y coordinate incremented by value.
func (v Vector3) AddY(value float64) Vector3 {
	v.Y += value
	return v
}

// AddZ returns a new point with the z coordinate incremented by value.
func (v Vector3) AddZ(value float64) Vector3 {
	v.Z += value
	return v
}

// Add returns the component-wise sum of two points.
func (v Vector3) Add(rhs Vector3) Vector3 {
	return Vector3{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns the component-wise difference of two points.
func (v Vector3) Sub(rhs Vector3) Vector3 {
	return Vector3{X: v.X - rhs.X, Y: v.Y - rhs.Y, Z: v.Z - rhs.Z}
}

// Mul returns the component-wise product of two points.
func (v Vector3) Mul(rhs Vector3) Vector3 {
	return Vector3{X: v.X * rhs.X, Y: v.Y * rhs.Y, Z: v.Z * rhs.Z}
}

// Div returns the component-wise quotient of two points.
func (v Vector3) Div(rhs Vector3) Vector3 {
	return Vector3{X: v.X / rhs.X, Y: v.Y / rhs.Y, Z: v.Z / rhs.Z}
}

// String renders the point with coordinates rounded for display.
func (v Vector3) String() string {
	return fmt.Sprintf("{x: %v, y: %v, z: %v}", Round(v.X), Round(v.Y), Round(v.Z))
}

// MarshalJSON serializes the point as a [x, y, z] tuple.
func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON deserializes the point from a [x, y, z] tuple.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	var tuple [3]float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	v.X, v.Y, v.Z = tuple[0], tuple[1], tuple[2]
	return nil
}
