package camotics

import (
	"encoding/json"
	"fmt"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/tool"
)

// ResolutionMode selects how the simulation resolution is chosen.
// Projects created by this package always use ResolutionManual so
// that the resolution argument is honored as given.
type ResolutionMode string

const (
	// ResolutionHigh corresponds to a resolution of 0.116348.
	ResolutionHigh ResolutionMode = "high"
	// ResolutionLow corresponds to a resolution of 0.428631.
	ResolutionLow ResolutionMode = "low"
	// ResolutionManual uses the resolution value of the project.
	ResolutionManual ResolutionMode = "manual"
)

// Tool is a cutter definition in the shape Camotics expects.
type Tool struct {
	Units    geom.Units `json:"units"`
	Angle    float64    `json:"angle,omitempty"`
	Length   float64    `json:"length"`
	Diameter float64    `json:"diameter"`
	Number   int        `json:"number"`
	Shape    tool.Shape `json:"shape"`
}

// ToolFrom converts a cutter configuration to the Camotics tool
// definition at the given change position.
func ToolFrom(t tool.Tool, number int) Tool {
	out := Tool{
		Units:    t.Units,
		Length:   t.Length,
		Diameter: t.Diameter,
		Number:   number,
		Shape:    t.Shape,
	}
	if t.Shape == tool.ShapeConical {
		out.Angle = t.Angle
	}
	return out
}

// Workpiece is the stock material the simulation carves from. The
// bounds are always given explicitly rather than derived by Camotics.
type Workpiece struct {
	Automatic bool        `json:"automatic"`
	Margin    float64     `json:"margin"`
	Bounds    geom.Bounds `json:"bounds"`
}

// Project models a Camotics project file. The name is only used for
// the filenames and is not part of the serialized document.
type Project struct {
	Name           string         `json:"-"`
	Units          geom.Units     `json:"units"`
	ResolutionMode ResolutionMode `json:"resolution-mode"`
	Resolution     float64        `json:"resolution"`
	Tools          map[int]Tool   `json:"tools"`
	Workpiece      Workpiece      `json:"workpiece"`
	Files          []string       `json:"files"`
}

// New creates a project over the given tools, numbered by their slice
// order starting at 1, with the workpiece set to the given bounds.
func New(name string, units geom.Units, tools []tool.Tool, workpiece geom.Bounds, resolution float64) *Project {
	toolMap := make(map[int]Tool, len(tools))
	for index, t := range tools {
		number := index + 1
		toolMap[number] = ToolFrom(t, number)
	}
	return &Project{
		Name:           name,
		Units:          units,
		ResolutionMode: ResolutionManual,
		Resolution:     resolution,
		Tools:          toolMap,
		Workpiece: Workpiece{
			Automatic: false,
			Margin:    0,
			Bounds:    workpiece,
		},
		Files: []string{fmt.Sprintf("%s.gcode", name)},
	}
}

// FromProgram creates a project covering the program's tools and
// bounds. Tools are numbered by their change position so that the
// simulation maps tool change codes back to the right cutter.
func FromProgram(name string, p *program.Program, resolution float64) *Project {
	project := New(name, p.Units(), nil, p.Bounds(), resolution)
	for _, t := range p.Tools() {
		number, ok := p.ToolOrdering(t)
		if !ok {
			continue
		}
		project.Tools[number] = ToolFrom(t, number)
	}
	return project
}

// ToJSON serializes the project to the document format the Camotics
// application opens.
func (p *Project) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize camotics project: %w", err)
	}
	return data, nil
}
