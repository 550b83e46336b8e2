package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Arc is a cut along a circular arc around one of the machine axes.
// The center must be equidistant from both endpoints.
type Arc struct {
	From      geom.Vector3
	To        geom.Vector3
	Center    geom.Vector3
	Axis      geom.Axis
	Direction geom.Direction
}

// Radius returns the arc radius derived from the endpoints.
func (a Arc) Radius() float64 {
	return math.Max(a.From.DistanceTo(a.Center), a.To.DistanceTo(a.Center))
}

// Bounds returns a conservative box covering both endpoints and the
// full circle around the center. The true arc sweep is a subset of
// this box.
func (a Arc) Bounds() geom.Bounds {
	radius := a.Radius()

	bounds := geom.MinMaxBounds()
	bounds = bounds.ExpandPoint(a.From)
	bounds = bounds.ExpandPoint(a.To)
	bounds = bounds.ExpandPoint(a.Center.Add(geom.V3(radius, radius, radius)))
	bounds = bounds.ExpandPoint(a.Center.Sub(geom.V3(radius, radius, radius)))
	return bounds
}

// ToInstructions selects the workplane for the arc axis, feeds along
// the arc and restores the XY plane.
func (a Arc) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	distanceFrom := a.From.DistanceTo(a.Center)
	distanceTo := a.To.DistanceTo(a.Center)

	if math.Abs(distanceFrom-distanceTo) > 0.0001 {
		return nil, &GeometryError{
			Code: CodeArcMismatch,
			Message: fmt.Sprintf(
				"arc distances from/center (%v %s) and to/center (%v %s) must be equal",
				distanceFrom,
				ctx.Units,
				distanceTo,
				ctx.Units,
			),
		}
	}

	instructions := []gcode.Instruction{
		gcode.Blank{},
		gcode.Comment{Text: fmt.Sprintf(
			"Cut arc %s at axis %s, from: x = %v, y = %v, z = %v, to: x = %v, y = %v, z = %v",
			a.Direction,
			a.Axis,
			geom.Round(a.From.X),
			geom.Round(a.From.Y),
			geom.Round(a.From.Z),
			geom.Round(a.To.X),
			geom.Round(a.To.Y),
			geom.Round(a.To.Z),
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(a.From.X), Y: gcode.Num(a.From.Y)},
		gcode.Linear{Z: gcode.Num(a.From.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
		planeSelect(a.Axis),
	}

	arcX := gcode.Num(a.To.X)
	arcY := gcode.Num(a.To.Y)
	arcZ := gcode.Num(a.To.Z)
	arcI := gcode.Num(a.Center.X - a.From.X)
	arcJ := gcode.Num(a.Center.Y - a.From.Y)
	arcK := gcode.Num(a.Center.Z - a.From.Z)
	feed := gcode.Num(ctx.Tool.FeedRate)

	if a.Direction == geom.Clockwise {
		instructions = append(instructions, gcode.ArcCW{
			X: arcX, Y: arcY, Z: arcZ, I: arcI, J: arcJ, K: arcK, Feed: feed,
		})
	} else {
		instructions = append(instructions, gcode.ArcCCW{
			X: arcX, Y: arcY, Z: arcZ, I: arcI, J: arcJ, K: arcK, Feed: feed,
		})
	}

	instructions = append(instructions,
		gcode.PlaneXY{},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
	)

	return instructions, nil
}

// planeSelect returns the workplane selection for arcs around the
// given axis.
func planeSelect(axis geom.Axis) gcode.Instruction {
	switch axis {
	case geom.AxisX:
		return gcode.PlaneYZ{}
	case geom.AxisY:
		return gcode.PlaneZX{}
	default:
		return gcode.PlaneXY{}
	}
}

func (Arc) isCut() {}
