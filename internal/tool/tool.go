package tool

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/geom"
)

// Shape identifies the cutter geometry.
type Shape string

const (
	// ShapeCylindrical is a flat end mill, the general purpose cutter
	// for contours, pockets, holes and planing.
	ShapeCylindrical Shape = "cylindrical"
	// ShapeBallnose is a round nosed cutter used for 3D carving.
	ShapeBallnose Shape = "ballnose"
	// ShapeConical is a v-bit used for engraving and carving.
	ShapeConical Shape = "conical"
)

// Valid reports whether the shape is one of the known cutter shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeCylindrical, ShapeBallnose, ShapeConical:
		return true
	}
	return false
}

// display returns the capitalized shape name used in comments.
func (s Shape) display() string {
	switch s {
	case ShapeCylindrical:
		return "Cylindrical"
	case ShapeBallnose:
		return "Ballnose"
	case ShapeConical:
		return "Conical"
	}
	return string(s)
}

// Tool is a cutter configuration. The angle field is only meaningful
// for conical tools and stays zero for the other shapes.
type Tool struct {
	Shape        Shape
	Units        geom.Units
	Length       float64
	Diameter     float64
	Angle        float64
	Direction    geom.Direction
	SpindleSpeed float64
	FeedRate     float64
}

// Cylindrical creates a flat end mill configuration.
func Cylindrical(units geom.Units, length, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	return Tool{
		Shape:        ShapeCylindrical,
		Units:        units,
		Length:       length,
		Diameter:     diameter,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// Ballnose creates a round nosed cutter configuration.
func Ballnose(units geom.Units, length, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	return Tool{
		Shape:        ShapeBallnose,
		Units:        units,
		Length:       length,
		Diameter:     diameter,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// Conical creates a v-bit configuration. The cutter length follows
// from the tip angle in degrees and the diameter.
func Conical(units geom.Units, angle, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	return Tool{
		Shape:        ShapeConical,
		Units:        units,
		Length:       (diameter / 2.0) / math.Tan(angle/2.0*math.Pi/180.0),
		Angle:        angle,
		Diameter:     diameter,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// Radius returns the cutter radius.
func (t Tool) Radius() float64 {
	return t.Diameter / 2.0
}

// String describes the tool the way tool change comments print it.
func (t Tool) String() string {
	units := t.Units.String()
	if t.Units == geom.Metric {
		units = " " + units
	}

	if t.Shape == ShapeConical {
		return fmt.Sprintf(
			"type = %s, angle = %v°, diameter = %v%s, length = %v%s, direction = %s, spindle_speed = %v rpm, feed_rate = %v%s/min",
			t.Shape.display(),
			geom.Round(t.Angle),
			geom.Round(t.Diameter),
			units,
			geom.Round(t.Length),
			units,
			t.Direction,
			geom.Round(t.SpindleSpeed),
			geom.Round(t.FeedRate),
			units,
		)
	}

	return fmt.Sprintf(
		"type = %s, diameter = %v%s, length = %v%s, direction = %s, spindle_speed = %v rpm, feed_rate = %v%s/min",
		t.Shape.display(),
		geom.Round(t.Diameter),
		units,
		geom.Round(t.Length),
		units,
		t.Direction,
		geom.Round(t.SpindleSpeed),
		geom.Round(t.FeedRate),
		units,
	)
}
