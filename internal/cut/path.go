package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Segment is one piece of a path outline. Segment coordinates are
// relative to the owning path's start point. The set of segments is
// closed.
type Segment interface {
	// end returns the segment endpoint relative to the path start.
	end() geom.Vector2

	isSegment()
}

// LineSegment is a straight piece of a path.
type LineSegment struct {
	From geom.Vector2
	To   geom.Vector2
}

func (s LineSegment) end() geom.Vector2 { return s.To }

func (LineSegment) isSegment() {}

// ArcSegment is a circular piece of a path around one of the machine
// axes.
type ArcSegment struct {
	From      geom.Vector2
	To        geom.Vector2
	Center    geom.Vector2
	Axis      geom.Axis
	Direction geom.Direction
}

// Radius returns the arc radius derived from the endpoints.
func (s ArcSegment) Radius() float64 {
	return math.Max(s.From.DistanceTo(s.Center), s.To.DistanceTo(s.Center))
}

func (s ArcSegment) end() geom.Vector2 { return s.To }

func (ArcSegment) isSegment() {}

// PointSegment feeds straight to the given point from wherever the
// previous segment ended.
type PointSegment struct {
	Point geom.Vector2
}

func (s PointSegment) end() geom.Vector2 { return s.Point }

func (PointSegment) isSegment() {}

// SegmentLine creates a straight path segment.
func SegmentLine(from, to geom.Vector2) Segment {
	return LineSegment{From: from, To: to}
}

// SegmentArcX creates an arc segment around the x axis.
func SegmentArcX(from, to, center geom.Vector2, direction geom.Direction) Segment {
	return ArcSegment{From: from, To: to, Center: center, Axis: geom.AxisX, Direction: direction}
}

// SegmentArcY creates an arc segment around the y axis.
func SegmentArcY(from, to, center geom.Vector2, direction geom.Direction) Segment {
	return ArcSegment{From: from, To: to, Center: center, Axis: geom.AxisY, Direction: direction}
}

// SegmentArcZ creates a top down arc segment.
func SegmentArcZ(from, to, center geom.Vector2, direction geom.Direction) Segment {
	return ArcSegment{From: from, To: to, Center: center, Axis: geom.AxisZ, Direction: direction}
}

// SegmentPoint creates a point segment.
func SegmentPoint(x, y float64) Segment {
	return PointSegment{Point: geom.V2(x, y)}
}

// SegmentPoints creates one point segment per coordinate.
func SegmentPoints(points []geom.Vector2) []Segment {
	segments := make([]Segment, 0, len(points))
	for _, point := range points {
		segments = append(segments, PointSegment{Point: point})
	}
	return segments
}

// Path is a top down cut built from segments, lowered towards EndZ in
// depth layers. The depth lost per segment within a layer is
// proportional to the segment's share of the total travel distance.
type Path struct {
	Start    geom.Vector3
	Segments []Segment
	EndZ     float64
	MaxStepZ float64
}

// Bounds returns the box enclosing all segment endpoints, covering the
// full circle for arc segments.
func (p Path) Bounds() geom.Bounds {
	bounds := geom.MinMaxBounds()

	minZ := math.Min(p.Start.Z, p.EndZ)
	maxZ := math.Max(p.Start.Z, p.EndZ)

	for _, segment := range p.Segments {
		switch s := segment.(type) {
		case ArcSegment:
			radius := s.Radius()
			bounds = bounds.ExpandPoint(geom.V3(s.Center.X-radius, s.Center.Y-radius, minZ))
			bounds = bounds.ExpandPoint(geom.V3(s.Center.X+radius, s.Center.Y+radius, maxZ))
		case LineSegment:
			bounds = bounds.ExpandPoint(geom.V3(p.Start.X+s.From.X, p.Start.Y+s.From.Y, minZ))
			bounds = bounds.ExpandPoint(geom.V3(p.Start.X+s.To.X, p.Start.Y+s.To.Y, maxZ))
		case PointSegment:
			bounds = bounds.ExpandPoint(geom.V3(p.Start.X+s.Point.X, p.Start.Y+s.Point.Y, minZ))
			bounds = bounds.ExpandPoint(geom.V3(p.Start.X+s.Point.X, p.Start.Y+s.Point.Y, maxZ))
		}
	}

	return bounds
}

// ToInstructions traces the segments once per depth layer and a final
// time at full depth. A path without segments emits nothing.
func (p Path) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	if len(p.Segments) == 0 {
		return nil, nil
	}

	first := p.Segments[0]
	var firstPoint geom.Vector2
	switch s := first.(type) {
	case ArcSegment:
		firstPoint = s.From
	case LineSegment:
		firstPoint = s.From
	case PointSegment:
		firstPoint = s.Point
	}

	instructions := []gcode.Instruction{
		gcode.Blank{},
		gcode.Comment{Text: fmt.Sprintf(
			"Cut path at: x = %v, y = %v",
			geom.Round(p.Start.X),
			geom.Round(p.Start.Y),
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(p.Start.X + firstPoint.X), Y: gcode.Num(p.Start.Y + firstPoint.Y)},
		gcode.Linear{Z: gcode.Num(p.Start.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
	}

	// Distances walk endpoint to endpoint starting at the path origin,
	// chords for arcs.
	totalDistance := 0.0
	lastPoint := geom.Vector2{}
	distances := make([]float64, 0, len(p.Segments))
	for _, segment := range p.Segments {
		distance := lastPoint.DistanceTo(segment.end())
		distances = append(distances, distance)
		totalDistance += distance
		lastPoint = segment.end()
	}

	maxStepZ := math.Abs(p.MaxStepZ)
	layers := int(math.Floor((p.Start.Z - p.EndZ) / maxStepZ))
	startZ := p.Start.Z

	for layer := 0; layer < layers; layer++ {
		endZ := startZ - maxStepZ

		layerInstructions, err := p.layerInstructions(ctx.Units, startZ, endZ, distances, totalDistance)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, layerInstructions...)

		startZ = endZ
	}

	layerInstructions, err := p.layerInstructions(ctx.Units, p.EndZ, p.EndZ, distances, totalDistance)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, layerInstructions...)

	instructions = append(instructions, gcode.Rapid{Z: gcode.Num(ctx.ZSafe)})

	return instructions, nil
}

func (p Path) layerInstructions(units geom.Units, startZ, endZ float64, distances []float64, totalDistance float64) ([]gcode.Instruction, error) {
	var instructions []gcode.Instruction
	fromZ := startZ

	for index, segment := range p.Segments {
		toZ := fromZ - distances[index]/totalDistance*(startZ-endZ)

		switch s := segment.(type) {
		case ArcSegment:
			distanceFrom := s.From.DistanceTo(s.Center)
			distanceTo := s.To.DistanceTo(s.Center)

			if math.Abs(distanceFrom-distanceTo) > 0.0001 {
				return nil, &GeometryError{
					Code: CodeArcMismatch,
					Message: fmt.Sprintf(
						"arc distances from/center (%v %s) and to/center (%v %s) must be equal",
						distanceFrom,
						units,
						distanceTo,
						units,
					),
				}
			}

			instructions = append(instructions, gcode.Linear{
				X: gcode.Num(p.Start.X + s.From.X),
				Y: gcode.Num(p.Start.Y + s.From.Y),
				Z: gcode.Num(fromZ),
			})
			instructions = append(instructions, planeSelect(s.Axis))

			arc := gcode.ArcCW{
				X: gcode.Num(p.Start.X + s.To.X),
				Y: gcode.Num(p.Start.Y + s.To.Y),
				Z: gcode.Num(toZ),
				I: gcode.Num(s.Center.X - s.From.X),
				J: gcode.Num(s.Center.Y - s.From.Y),
			}
			if s.Direction == geom.Clockwise {
				instructions = append(instructions, arc)
			} else {
				instructions = append(instructions, gcode.ArcCCW(arc))
			}

			instructions = append(instructions, gcode.PlaneXY{})
		case LineSegment:
			instructions = append(instructions,
				gcode.Linear{
					X: gcode.Num(p.Start.X + s.From.X),
					Y: gcode.Num(p.Start.Y + s.From.Y),
					Z: gcode.Num(fromZ),
				},
				gcode.Linear{
					X: gcode.Num(p.Start.X + s.To.X),
					Y: gcode.Num(p.Start.Y + s.To.Y),
					Z: gcode.Num(toZ),
				},
			)
		case PointSegment:
			instructions = append(instructions, gcode.Linear{
				X: gcode.Num(p.Start.X + s.Point.X),
				Y: gcode.Num(p.Start.Y + s.Point.Y),
				Z: gcode.Num(toZ),
			})
		}

		fromZ = toZ
	}

	return instructions, nil
}

func (Path) isCut() {}
