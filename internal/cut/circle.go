package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Circle is a top down circular cut. With a zero radius it degenerates
// to a plain drill plunge.
type Circle struct {
	Start        geom.Vector3
	EndZ         float64
	Radius       float64
	MaxStepZ     float64
	Compensation geom.Compensation
}

// Bounds returns the box enclosing the nominal circle, ignoring tool
// compensation.
func (c Circle) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.V3(c.Start.X-c.Radius, c.Start.Y-c.Radius, c.EndZ),
		Max: geom.V3(c.Start.X+c.Radius, c.Start.Y+c.Radius, c.Start.Z),
	}
}

// ToInstructions emits a helical cut spiraling down to EndZ, or a
// straight drill plunge when the compensated radius vanishes.
func (c Circle) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	cutRadius := c.Radius
	switch c.Compensation {
	case geom.CompensationInner:
		cutRadius = c.Radius - ctx.Tool.Radius()
	case geom.CompensationOuter:
		cutRadius = c.Radius + ctx.Tool.Radius()
	}

	if cutRadius >= 0.0 && cutRadius < 0.001 {
		return []gcode.Instruction{
			gcode.Blank{},
			gcode.Comment{Text: fmt.Sprintf(
				"Drill hole at: x = %v, y = %v",
				geom.Round(c.Start.X),
				geom.Round(c.Start.Y),
			)},
			gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
			gcode.Rapid{X: gcode.Num(c.Start.X), Y: gcode.Num(c.Start.Y)},
			gcode.Linear{Z: gcode.Num(c.EndZ), Feed: gcode.Num(ctx.Tool.FeedRate)},
			gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		}, nil
	}

	if cutRadius < 0.0 {
		return nil, &GeometryError{
			Code: CodeToolTooWide,
			Message: fmt.Sprintf(
				"unable to cut circle, tool is %v mm too wide (tool diameter is %v mm)",
				math.Abs(cutRadius)*2.0,
				ctx.Tool.Diameter,
			),
		}
	}

	instructions := []gcode.Instruction{
		gcode.Blank{},
		gcode.Comment{Text: fmt.Sprintf(
			"Cut hole at: x = %v, y = %v",
			geom.Round(c.Start.X),
			geom.Round(c.Start.Y),
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(c.Start.X - cutRadius), Y: gcode.Num(c.Start.Y)},
		gcode.Linear{Z: gcode.Num(c.Start.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
	}

	maxStepZ := math.Abs(c.MaxStepZ)
	layers := int(math.Floor((c.Start.Z - c.EndZ) / maxStepZ))

	for index := 0; index < layers; index++ {
		instructions = append(instructions, gcode.ArcCW{
			X: gcode.Num(c.Start.X - cutRadius),
			Z: gcode.Num(math.Max(c.Start.Z-float64(index)*maxStepZ, c.EndZ)),
			I: gcode.Num(cutRadius),
		})
	}

	// Flat finishing circle at full depth, then one more with a hair
	// smaller radius to release the center slug.
	instructions = append(instructions,
		gcode.ArcCW{
			X: gcode.Num(c.Start.X - cutRadius),
			Z: gcode.Num(c.EndZ),
			I: gcode.Num(cutRadius),
		},
		gcode.ArcCW{
			X: gcode.Num(c.Start.X - cutRadius),
			Z: gcode.Num(c.EndZ),
			I: gcode.Num(cutRadius - 0.001),
		},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
	)

	return instructions, nil
}

func (Circle) isCut() {}
