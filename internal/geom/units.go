package geom

// Units selects between metric and imperial measurements. It is used
// as a setting both for programs and for tools.
type Units string

const (
	// Metric indicates that measurements are given in millimeters.
	Metric Units = "metric"
	// Imperial indicates that measurements are given in inches.
	Imperial Units = "imperial"
)

// MMToInch converts a millimeter measurement to the imperial scale.
func MMToInch(mm float64) float64 {
	return mm * 25.4
}

// MeasurementFromMM converts a millimeter measurement to the selected
// unit scale.
func (u Units) MeasurementFromMM(value float64) float64 {
	if u == Imperial {
		return MMToInch(value)
	}
	return value
}

// DefaultZEnd provides the default vertical bottom value in the
// selected unit.
func (u Units) DefaultZEnd() float64 {
	return u.MeasurementFromMM(0.1)
}

// DefaultZMaxStep provides the default maximum depth per pass in the
// selected unit. Paths are usually cut in several passes rather than
// at full depth at once.
func (u Units) DefaultZMaxStep() float64 {
	return u.MeasurementFromMM(1.0)
}

// Valid reports whether the value is one of the known unit systems.
func (u Units) Valid() bool {
	return u == Metric || u == Imperial
}

// String returns the unit suffix used in generated comments, "mm" for
// metric and a double quote for imperial.
func (u Units) String() string {
	if u == Imperial {
		return "\""
	}
	return "mm"
}

// Direction indicates a rotation direction, used both for tool spin
// and for arc cuts.
type Direction string

const (
	// Clockwise rotation.
	Clockwise Direction = "clockwise"
	// Counterclockwise rotation.
	Counterclockwise Direction = "counterclockwise"
)

// Valid reports whether the value is one of the known directions.
func (d Direction) Valid() bool {
	return d == Clockwise || d == Counterclockwise
}

// Axis selects one machine axis, mainly used when cutting arcs. An
// arc around the Z axis is a conventional top-down arc.
type Axis string

const (
	// AxisX selects the X axis.
	AxisX Axis = "X"
	// AxisY selects the Y axis.
	AxisY Axis = "Y"
	// AxisZ selects the Z axis.
	AxisZ Axis = "Z"
)

// Valid reports whether the value is one of the known axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Compensation indicates how a declared path should be offset by the
// radius of the tool so that the cut edge lands at the intended
// boundary.
type Compensation string

const (
	// CompensationNone cuts at the declared path without any offset.
	CompensationNone Compensation = "none"
	// CompensationInner cuts at the inside of the path, useful for
	// pockets and holes that must not end up oversized.
	CompensationInner Compensation = "inner"
	// CompensationOuter cuts at the outside of the path, useful for
	// cutting out pieces of exactly the declared size.
	CompensationOuter Compensation = "outer"
)

// Valid reports whether the value is one of the known compensation
// modes.
func (c Compensation) Valid() bool {
	switch c {
	case CompensationNone, CompensationInner, CompensationOuter:
		return true
	}
	return false
}

func (c Compensation) String() string {
	return string(c)
}
