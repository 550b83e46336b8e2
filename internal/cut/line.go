package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Line is a straight cut between two points in 3D space.
type Line struct {
	From geom.Vector3
	To   geom.Vector3
}

// Bounds returns the box spanned by the two endpoints.
func (l Line) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.V3(
			math.Min(l.From.X, l.To.X),
			math.Min(l.From.Y, l.To.Y),
			math.Min(l.From.Z, l.To.Z),
		),
		Max: geom.V3(
			math.Max(l.From.X, l.To.X),
			math.Max(l.From.Y, l.To.Y),
			math.Max(l.From.Z, l.To.Z),
		),
	}
}

// ToInstructions plunges at the from point and feeds to the to point.
func (l Line) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	return []gcode.Instruction{
		gcode.Blank{},
		gcode.Comment{Text: fmt.Sprintf(
			"Cut line from: x = %v, y = %v, z = %v, to: x = %v, y = %v, z = %v",
			geom.Round(l.From.X),
			geom.Round(l.From.Y),
			geom.Round(l.From.Z),
			geom.Round(l.To.X),
			geom.Round(l.To.Y),
			geom.Round(l.To.Z),
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(l.From.X), Y: gcode.Num(l.From.Y)},
		gcode.Linear{Z: gcode.Num(l.From.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
		gcode.Linear{X: gcode.Num(l.To.X), Y: gcode.Num(l.To.Y), Z: gcode.Num(l.To.Z)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
	}, nil
}

func (Line) isCut() {}
