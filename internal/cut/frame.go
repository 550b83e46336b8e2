package cut

import (
	"fmt"
	"math"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Frame is a top down rectangular contour cut. The tool follows the
// outline only, leaving the inside untouched.
type Frame struct {
	Start        geom.Vector3
	Size         geom.Vector2
	EndZ         float64
	MaxStepZ     float64
	Compensation geom.Compensation
}

// Bounds returns the box enclosing the nominal outline, ignoring tool
// compensation.
func (f Frame) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.V3(f.Start.X, f.Start.Y, f.EndZ),
		Max: geom.V3(f.Start.X+f.Size.X, f.Start.Y+f.Size.Y, f.Start.Z),
	}
}

// ToInstructions traces the outline in helical depth layers. Each side
// descends its share of the layer depth so the tool lands exactly on
// the layer floor after a full lap.
func (f Frame) ToInstructions(ctx Context) ([]gcode.Instruction, error) {
	toolRadius := ctx.Tool.Radius()
	toolDiameter := ctx.Tool.Diameter

	if f.Size.X < toolDiameter {
		return nil, &GeometryError{
			Code: CodeToolTooWide,
			Message: fmt.Sprintf(
				"unable to cut frame, tool is %v mm wider than x dimension (tool diameter is %v mm)",
				toolDiameter-f.Size.X,
				toolDiameter,
			),
		}
	}

	if f.Size.Y < toolDiameter {
		return nil, &GeometryError{
			Code: CodeToolTooWide,
			Message: fmt.Sprintf(
				"unable to cut frame, tool is %v mm wider than y dimension (tool diameter is %v mm)",
				toolDiameter-f.Size.Y,
				toolDiameter,
			),
		}
	}

	start := f.Start
	size := f.Size
	switch f.Compensation {
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
			"Cut frame: x = %v, y = %v, size = %s",
			geom.Round(start.X),
			geom.Round(start.Y),
			size,
		)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(start.X), Y: gcode.Num(start.Y)},
		gcode.Linear{Z: gcode.Num(start.Z), Feed: gcode.Num(ctx.Tool.FeedRate)},
	}

	maxStepZ := math.Abs(f.MaxStepZ)
	startZ := start.Z
	endZ := startZ
	layers := int(math.Floor(math.Abs(startZ-f.EndZ) / maxStepZ))

	for layer := 1; layer <= layers; layer++ {
		endZ -= maxStepZ
		instructions = append(instructions, f.layerInstructions(start, size, startZ, endZ)...)
		startZ = endZ
	}

	// Flat finishing lap at full depth.
	instructions = append(instructions, f.layerInstructions(start, size, f.EndZ, f.EndZ)...)

	instructions = append(instructions,
		gcode.Linear{X: gcode.Num(start.X + size.X)},
		gcode.Rapid{Z: gcode.Num(ctx.ZSafe)},
		gcode.Rapid{X: gcode.Num(start.X), Y: gcode.Num(start.Y)},
	)

	return instructions, nil
}

func (f Frame) layerInstructions(start geom.Vector3, size geom.Vector2, startZ, endZ float64) []gcode.Instruction {
	deltaZ := endZ - startZ
	circumference := (size.X + size.Y) * 2.0
	xStepZ := (size.X / circumference) * deltaZ
	yStepZ := (size.Y / circumference) * deltaZ

	return []gcode.Instruction{
		gcode.Linear{X: gcode.Num(start.X + size.X), Z: gcode.Num(startZ + xStepZ)},
		gcode.Linear{Y: gcode.Num(start.Y + size.Y), Z: gcode.Num(startZ + xStepZ + yStepZ)},
		gcode.Linear{X: gcode.Num(start.X), Z: gcode.Num(startZ + xStepZ*2.0 + yStepZ)},
		gcode.Linear{Y: gcode.Num(start.Y), Z: gcode.Num(endZ)},
	}
}

func (Frame) isCut() {}
