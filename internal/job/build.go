package job

import (
	"context"
	"fmt"

	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/tool"
)

// Catalog resolves named tool references. *toolstore.Store satisfies
// it; jobs without catalog references build with a nil catalog.
type Catalog interface {
	Get(ctx context.Context, name string) (tool.Tool, error)
}

// Build compiles the job into a program. Catalog tool references are
// resolved through the given catalog.
func (s *Spec) Build(ctx context.Context, catalog Catalog) (*program.Program, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	units := geom.Units(s.Units)
	p := program.New(units, s.ZSafe, s.ZToolChange)
	p.SetMeta(program.Meta{Name: s.Name, Description: s.Description})

	tools := make(map[string]tool.Tool, len(s.Tools))
	for name, spec := range s.Tools {
		resolved, err := spec.resolve(ctx, units, catalog)
		if err != nil {
			return nil, fmt.Errorf("tools[%s]: %w", name, err)
		}
		tools[name] = resolved
	}

	for i, op := range s.Operations {
		target := p.Context(tools[op.Tool])
		switch {
		case op.Cut != nil:
			built, err := op.Cut.build(units)
			if err != nil {
				return nil, fmt.Errorf("operations[%d]: %w", i, err)
			}
			target.AppendCut(built)
		case op.Comment != nil:
			target.AppendComment(*op.Comment)
		case op.Message != nil:
			target.AppendMessage(*op.Message)
		case op.Blank:
			target.Append(program.BlankOperation{})
		}
	}
	return p, nil
}

func (t *ToolSpec) resolve(ctx context.Context, jobUnits geom.Units, catalog Catalog) (tool.Tool, error) {
	if t.Catalog != "" {
		if catalog == nil {
			return tool.Tool{}, fmt.Errorf("catalog reference %q but no catalog is available", t.Catalog)
		}
		resolved, err := catalog.Get(ctx, t.Catalog)
		if err != nil {
			return tool.Tool{}, err
		}
		return resolved, nil
	}

	units := jobUnits
	if t.Units != "" {
		units = geom.Units(t.Units)
	}
	direction := geom.Clockwise
	if t.Direction != "" {
		direction = geom.Direction(t.Direction)
	}

	switch tool.Shape(t.Shape) {
	case tool.ShapeCylindrical:
		return tool.Cylindrical(units, t.Length, t.Diameter, direction, t.SpindleSpeed, t.FeedRate), nil
	case tool.ShapeBallnose:
		return tool.Ballnose(units, t.Length, t.Diameter, direction, t.SpindleSpeed, t.FeedRate), nil
	case tool.ShapeConical:
		return tool.Conical(units, t.Angle, t.Diameter, direction, t.SpindleSpeed, t.FeedRate), nil
	}
	return tool.Tool{}, fmt.Errorf("unknown shape %q", t.Shape)
}

func (c *CutSpec) build(units geom.Units) (cut.Cut, error) {
	endZ := -units.DefaultZEnd()
	if c.EndZ != nil {
		endZ = *c.EndZ
	}
	maxStepZ := units.DefaultZMaxStep()
	if c.MaxStepZ != nil {
		maxStepZ = *c.MaxStepZ
	}

	switch c.Type {
	case "drill":
		return cut.Drill(vec3(c.Start), endZ), nil
	case "circle":
		return cut.NewCircle(vec3(c.Start), endZ, c.Radius, maxStepZ), nil
	case "circle_inner":
		return cut.CircleInner(vec3(c.Start), endZ, c.Radius, maxStepZ), nil
	case "circle_outer":
		return cut.CircleOuter(vec3(c.Start), endZ, c.Radius, maxStepZ), nil
	case "frame":
		return cut.NewFrame(vec3(c.Start), vec2(c.Size), endZ, maxStepZ), nil
	case "frame_inner":
		return cut.FrameInner(vec3(c.Start), vec2(c.Size), endZ, maxStepZ), nil
	case "frame_outer":
		return cut.FrameOuter(vec3(c.Start), vec2(c.Size), endZ, maxStepZ), nil
	case "plane":
		if c.EndZStop != nil {
			return cut.PlaneWithSlope(vec3(c.Start), vec2(c.Size), endZ, *c.EndZStop, maxStepZ), nil
		}
		return cut.Plane(vec3(c.Start), vec2(c.Size), endZ, maxStepZ), nil
	case "pocket":
		return cut.Pocket(vec3(c.Start), vec2(c.Size), endZ, maxStepZ), nil
	case "line":
		return cut.NewLine(vec3(c.From), vec3(c.To)), nil
	case "arc":
		axis := geom.AxisZ
		if c.Axis != "" {
			axis = geom.Axis(c.Axis)
		}
		return cut.NewArc(vec3(c.From), vec3(c.To), vec3(c.Center), axis, geom.Direction(c.Direction)), nil
	case "path":
		segments := make([]cut.Segment, 0, len(c.Segments))
		for _, spec := range c.Segments {
			segments = append(segments, spec.build())
		}
		return cut.NewPath(vec3(c.Start), segments, endZ, maxStepZ), nil
	}
	return nil, fmt.Errorf("unknown cut type %q", c.Type)
}

func (s *SegmentSpec) build() cut.Segment {
	switch s.Type {
	case "line":
		return cut.SegmentLine(vec2(s.From), vec2(s.To))
	case "arc":
		from, to, center := vec2(s.From), vec2(s.To), vec2(s.Center)
		direction := geom.Direction(s.Direction)
		switch geom.Axis(s.Axis) {
		case geom.AxisX:
			return cut.SegmentArcX(from, to, center, direction)
		case geom.AxisY:
			return cut.SegmentArcY(from, to, center, direction)
		}
		return cut.SegmentArcZ(from, to, center, direction)
	default:
		return cut.SegmentPoint(s.To[0], s.To[1])
	}
}

func vec2(values []float64) geom.Vector2 {
	return geom.V2(values[0], values[1])
}

func vec3(values []float64) geom.Vector3 {
	return geom.V3(values[0], values[1], values[2])
}
