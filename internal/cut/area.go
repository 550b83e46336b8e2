package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Area is a top down rectangular surface cut used for pockets and
// planing. When EndZStop differs from EndZ the floor slopes along the
// x axis from EndZ to EndZStop.
type Area struct {
	Start        geom.Vector3
	Size         geom.Vector2
	EndZ         float64
	EndZStop     float64
	MaxStepZ     float64
	Compensation geom.Compensation
}

// Bounds returns the box enclosing the nominal rectangle down to the
// deepest floor level, ignoring tool compensation.
func (a Area) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.V3(a.Start.X, a.Start.Y, math.Min(a.EndZ, a.EndZStop)),
		Max: geom.V3(a.Start.X+a.Size.X, a.Start.Y+a.Size.Y, a.Start.Z),
	}
}

// ToInstructions clears the rectangle in depth layers. Each layer
// traces the perimeter and then sweeps the inside with overlapping
// boustrophedon passes.
func (a Area) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	toolRadius := ctx.Tool.Radius()
	toolDiameter := ctx.Tool.Diameter
	toolUnits := ctx.Tool.Units

	if a.Size.X < toolDiameter {
		return nil, &GeometryError{
			Code: CodeToolTooWide,
			Message: fmt.Sprintf(
				"unable to plane area, tool is %.2f %s wider than x dimension (tool diameter is %.2f %s)",
				toolDiameter-a.Size.X,
				toolUnits,
				toolDiameter,
				toolUnits,
			),
		}
	}

	if a.Size.Y < toolDiameter {
		return nil, &GeometryError{
			Code: CodeToolTooWide,
			Message: fmt.Sprintf(
				"unable to plane area, tool is %.2f %s wider than y dimension (tool diameter is %.2f %s)",
				toolDiameter-a.Size.Y,
				toolUnits,
				toolDiameter,
				toolUnits,
			),
		}
	}

	start := a.Start
	size := a.Size
	switch a.Compensation {
	case geom.CompensationInner:
		start = start.AddX(toolRadius).AddY(toolRadius)
		size = size.AddX(-toolRadius * 2.0).AddY(-toolRadius * 2.0)
	case geom.CompensationOuter:
		start = start.AddX(-toolRadius).AddY(-toolRadius)
		size = size.AddX(toolRadius * 2.0).AddY(toolRadius * 2.0)
	}

	instructions := []gcode.Instruction{
		gcode.Blank{},
		gcode.Comment{Text: fmt.Sprintf(
			"Do planing at: x = %v, y = %v, size = %s",
			geom.Round(start.X),
			geom.Round(start.Y),
			size,
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(start.X), Y: gcode.Num(start.Y)},
		gcode.Linear{Z: gcode.Num(start.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
	}

	deltaZ := a.EndZStop - a.EndZ
	maxStepZ := math.Abs(a.MaxStepZ)

	var layers int
	if math.Abs(a.EndZ-a.EndZStop) < 0.01 {
		layers = int(math.Ceil(math.Abs(a.EndZ-start.Z) / maxStepZ))
	} else {
		layers = int(math.Ceil(math.Abs(deltaZ) / maxStepZ))
	}

	startZ := start.Z
	if deltaZ < 0.0 {
		startZ = start.Z - deltaZ
	}
	endZ := startZ
	endZStop := startZ + deltaZ

	for layer := 1; layer < layers; layer++ {
		endZ -= maxStepZ
		endZStop -= maxStepZ
		instructions = append(instructions, a.layerInstructions(
			start,
			size,
			math.Min(endZ, ctx.ZSafe),
			math.Min(endZStop, ctx.ZSafe),
			toolRadius,
		)...)
	}

	instructions = append(instructions, a.layerInstructions(
		start,
		size,
		math.Min(a.EndZ, ctx.ZSafe),
		math.Min(a.EndZStop, ctx.ZSafe),
		toolRadius,
	)...)

	instructions = append(instructions, gcode.Rapid{Z: gcode.Num(ctx.ZSafe)})

	return instructions, nil
}

func (a Area) layerInstructions(start geom.Vector3, size geom.Vector2, endZ, endZStop, toolRadius float64) []gcode.Instruction {
	// Passes overlap by a tenth of the tool diameter so no ridge is
	// left between sweeps.
	passes := int(math.Ceil(size.Y / (toolRadius * 1.8)))
	passY := size.Y / float64(passes)

	instructions := []gcode.Instruction{
		gcode.Linear{X: gcode.Num(start.X + size.X), Z: gcode.Num(endZStop)},
		gcode.Linear{Y: gcode.Num(start.Y + size.Y)},
		gcode.Linear{X: gcode.Num(start.X), Z: gcode.Num(endZ)},
		gcode.Linear{Y: gcode.Num(start.Y)},
	}

	endAtStart := true

	if size.X > toolRadius*2.0 {
		for index := 0; index < passes; index++ {
			instructions = append(instructions, gcode.Linear{
				Y: gcode.Num(start.Y + float64(index)*passY),
			})

			if index%2 == 0 {
				instructions = append(instructions, gcode.Linear{
					X: gcode.Num(start.X + size.X),
					Z: gcode.Num(endZStop),
				})
				endAtStart = false
			} else {
				instructions = append(instructions, gcode.Linear{
					X: gcode.Num(start.X),
					Z: gcode.Num(endZ),
				})
				endAtStart = true
			}
		}
	}

	liftZ := endZStop
	if endAtStart {
		liftZ = endZ
	}

	instructions = append(instructions,
		gcode.Rapid{Z: gcode.Num(liftZ + 0.5)},
		gcode.Rapid{X: gcode.Num(start.X), Y: gcode.Num(start.Y), Z: gcode.Num(endZ + 0.5)},
		gcode.Linear{Z: gcode.Num(endZ)},
	)

	return instructions
}

func (Area) isCut() {}
