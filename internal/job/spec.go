package job

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

// Spec is a parsed job file.
type Spec struct {
	// Name of the job, used for the emitted project filenames.
	Name string `yaml:"name"`

	// Description is an optional free text line added to the program
	// header.
	Description string `yaml:"description,omitempty"`

	// Units of the machine setup, "metric" or "imperial".
	Units string `yaml:"units"`

	// ZSafe is the vertical clearance height for rapid moves.
	ZSafe float64 `yaml:"z_safe"`

	// ZToolChange is the vertical clearance height for tool changes.
	ZToolChange float64 `yaml:"z_tool_change"`

	// Tools declares the cutters of the job by reference name.
	Tools map[string]ToolSpec `yaml:"tools"`

	// Operations lists the work to perform, in order.
	Operations []OperationSpec `yaml:"operations"`
}

// ToolSpec declares one cutter, either inline or as a catalog
// reference. A catalog reference sets only the catalog field.
type ToolSpec struct {
	// Catalog names a tool stored in the tool catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// Shape of an inline tool, cylindrical, ballnose or conical.
	Shape string `yaml:"shape,omitempty"`

	// Units of the inline tool, defaults to the job units.
	Units string `yaml:"units,omitempty"`

	// Length is the cutter length. Ignored for conical tools where
	// the length follows from angle and diameter.
	Length float64 `yaml:"length,omitempty"`

	// Diameter is the cutter diameter.
	Diameter float64 `yaml:"diameter,omitempty"`

	// Angle is the tip angle of a conical tool in degrees.
	Angle float64 `yaml:"angle,omitempty"`

	// Direction of the spindle, defaults to clockwise.
	Direction string `yaml:"direction,omitempty"`

	// SpindleSpeed in revolutions per minute.
	SpindleSpeed float64 `yaml:"spindle_speed,omitempty"`

	// FeedRate in units per minute.
	FeedRate float64 `yaml:"feed_rate,omitempty"`
}

// OperationSpec is one entry of the operations list. Every entry
// names the tool it runs under and carries exactly one of cut,
// comment, message or blank.
type OperationSpec struct {
	Tool    string   `yaml:"tool"`
	Cut     *CutSpec `yaml:"cut,omitempty"`
	Comment *string  `yaml:"comment,omitempty"`
	Message *string  `yaml:"message,omitempty"`
	Blank   bool     `yaml:"blank,omitempty"`
}

// CutSpec declares one cut. The type selects which of the remaining
// fields apply.
type CutSpec struct {
	// Type is one of drill, circle, circle_inner, circle_outer,
	// frame, frame_inner, frame_outer, plane, pocket, line, arc or
	// path.
	Type string `yaml:"type"`

	// Start is the [x, y, z] starting corner or center.
	Start []float64 `yaml:"start,omitempty"`

	// Size is the [x, y] extent of rectangular cuts.
	Size []float64 `yaml:"size,omitempty"`

	// From and To are [x, y, z] endpoints of line and arc cuts.
	From []float64 `yaml:"from,omitempty"`
	To   []float64 `yaml:"to,omitempty"`

	// Center is the [x, y, z] arc center.
	Center []float64 `yaml:"center,omitempty"`

	// Axis of an arc cut, X, Y or Z.
	Axis string `yaml:"axis,omitempty"`

	// Direction of an arc cut.
	Direction string `yaml:"direction,omitempty"`

	// Radius of circle cuts.
	Radius float64 `yaml:"radius,omitempty"`

	// EndZ is the final depth. Defaults to just below the zero plane.
	EndZ *float64 `yaml:"end_z,omitempty"`

	// EndZStop slopes the floor of a plane cut towards this depth at
	// the far x edge.
	EndZStop *float64 `yaml:"end_z_stop,omitempty"`

	// MaxStepZ caps the depth removed per pass. Defaults to the unit
	// default.
	MaxStepZ *float64 `yaml:"max_step_z,omitempty"`

	// Segments of a path cut.
	Segments []SegmentSpec `yaml:"segments,omitempty"`
}

// SegmentSpec is one piece of a path cut.
type SegmentSpec struct {
	// Type is line, arc or point.
	Type string `yaml:"type"`

	// From and To are [x, y] points relative to the path start.
	From []float64 `yaml:"from,omitempty"`
	To   []float64 `yaml:"to,omitempty"`

	// Center is the [x, y] center of an arc segment.
	Center []float64 `yaml:"center,omitempty"`

	// Axis of an arc segment, defaults to Z.
	Axis string `yaml:"axis,omitempty"`

	// Direction of an arc segment.
	Direction string `yaml:"direction,omitempty"`
}

// Load reads and parses a job file. Unknown fields are rejected so
// that typos surface as load errors instead of silently dropped
// settings.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return Parse(data)
}

// Parse parses a job document.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !geom.Units(s.Units).Valid() {
		return fmt.Errorf("units must be metric or imperial, got %q", s.Units)
	}
	if len(s.Tools) == 0 {
		return fmt.Errorf("tools map is required and must be non-empty")
	}
	if len(s.Operations) == 0 {
		return fmt.Errorf("operations list is required and must be non-empty")
	}

	for name, spec := range s.Tools {
		if err := spec.validate(); err != nil {
			return fmt.Errorf("tools[%s]: %w", name, err)
		}
	}

	for i, op := range s.Operations {
		if op.Tool == "" {
			return fmt.Errorf("operations[%d]: tool is required", i)
		}
		if _, ok := s.Tools[op.Tool]; !ok {
			return fmt.Errorf("operations[%d]: unknown tool %q", i, op.Tool)
		}
		actions := 0
		if op.Cut != nil {
			actions++
		}
		if op.Comment != nil {
			actions++
		}
		if op.Message != nil {
			actions++
		}
		if op.Blank {
			actions++
		}
		if actions != 1 {
			return fmt.Errorf("operations[%d]: exactly one of cut, comment, message or blank is required", i)
		}
		if op.Cut != nil {
			if err := op.Cut.validate(); err != nil {
				return fmt.Errorf("operations[%d]: %w", i, err)
			}
		}
	}
	return nil
}

func (t *ToolSpec) validate() error {
	if t.Catalog != "" {
		if t.Shape != "" || t.Diameter != 0 || t.Length != 0 {
			return fmt.Errorf("catalog reference must not carry inline tool fields")
		}
		return nil
	}

	shape := tool.Shape(t.Shape)
	if !shape.Valid() {
		return fmt.Errorf("shape must be cylindrical, ballnose or conical, got %q", t.Shape)
	}
	if t.Units != "" && !geom.Units(t.Units).Valid() {
		return fmt.Errorf("units must be metric or imperial, got %q", t.Units)
	}
	if t.Direction != "" && !geom.Direction(t.Direction).Valid() {
		return fmt.Errorf("direction must be clockwise or counterclockwise, got %q", t.Direction)
	}
	if t.Diameter <= 0 {
		return fmt.Errorf("diameter must be positive")
	}
	if shape == tool.ShapeConical {
		if t.Angle <= 0 {
			return fmt.Errorf("conical tools require a positive angle")
		}
	} else if t.Length <= 0 {
		return fmt.Errorf("length must be positive")
	}
	if t.SpindleSpeed <= 0 {
		return fmt.Errorf("spindle_speed must be positive")
	}
	if t.FeedRate <= 0 {
		return fmt.Errorf("feed_rate must be positive")
	}
	return nil
}

func (c *CutSpec) validate() error {
	switch c.Type {
	case "drill":
		return requireVec3(c.Start, "start")
	case "circle", "circle_inner", "circle_outer":
		if err := requireVec3(c.Start, "start"); err != nil {
			return err
		}
		if c.Radius <= 0 {
			return fmt.Errorf("cut %s: radius must be positive", c.Type)
		}
		return nil
	case "frame", "frame_inner", "frame_outer", "plane", "pocket":
		if err := requireVec3(c.Start, "start"); err != nil {
			return err
		}
		return requireVec2(c.Size, "size")
	case "line":
		if err := requireVec3(c.From, "from"); err != nil {
			return err
		}
		return requireVec3(c.To, "to")
	case "arc":
		for field, values := range map[string][]float64{"from": c.From, "to": c.To, "center": c.Center} {
			if err := requireVec3(values, field); err != nil {
				return err
			}
		}
		if c.Axis != "" && !geom.Axis(c.Axis).Valid() {
			return fmt.Errorf("cut arc: axis must be X, Y or Z, got %q", c.Axis)
		}
		if !geom.Direction(c.Direction).Valid() {
			return fmt.Errorf("cut arc: direction must be clockwise or counterclockwise, got %q", c.Direction)
		}
		return nil
	case "path":
		if err := requireVec3(c.Start, "start"); err != nil {
			return err
		}
		if len(c.Segments) == 0 {
			return fmt.Errorf("cut path: segments list must be non-empty")
		}
		for i, segment := range c.Segments {
			if err := segment.validate(); err != nil {
				return fmt.Errorf("segments[%d]: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown cut type %q", c.Type)
	}
}

func (s *SegmentSpec) validate() error {
	switch s.Type {
	case "line":
		if err := requireVec2(s.From, "from"); err != nil {
			return err
		}
		return requireVec2(s.To, "to")
	case "arc":
		for field, values := range map[string][]float64{"from": s.From, "to": s.To, "center": s.Center} {
			if err := requireVec2(values, field); err != nil {
				return err
			}
		}
		if s.Axis != "" && !geom.Axis(s.Axis).Valid() {
			return fmt.Errorf("axis must be X, Y or Z, got %q", s.Axis)
		}
		if !geom.Direction(s.Direction).Valid() {
			return fmt.Errorf("direction must be clockwise or counterclockwise, got %q", s.Direction)
		}
		return nil
	case "point":
		return requireVec2(s.To, "to")
	default:
		return fmt.Errorf("unknown segment type %q", s.Type)
	}
}

func requireVec2(values []float64, field string) error {
	if len(values) != 2 {
		return fmt.Errorf("%s must be [x, y]", field)
	}
	return nil
}

func requireVec3(values []float64, field string) error {
	if len(values) != 3 {
		return fmt.Errorf("%s must be [x, y, z]", field)
	}
	return nil
}
