package program

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

// Program collects per tool operation groups and emits them as one
// validated, deduplicated instruction stream.
type Program struct {
	mu          sync.Mutex
	units       geom.Units
	zSafe       float64
	zToolChange float64
	meta        Meta
	contexts    map[tool.Tool]*contextState
	ordering    *tool.Ordering
}

// New creates an empty program. zSafe is the height for free x/y
// travel, zToolChange the height used during tool changes.
func New(units geom.Units, zSafe, zToolChange float64) *Program {
	return &Program{
		units:       units,
		zSafe:       zSafe,
		zToolChange: zToolChange,
		contexts:    make(map[tool.Tool]*contextState),
		ordering:    tool.NewOrdering(),
	}
}

// NewEmptyFrom creates an empty program with the same settings as the
// supplied one.
func NewEmptyFrom(other *Program) *Program {
	other.mu.Lock()
	defer other.mu.Unlock()

	p := New(other.units, other.zSafe, other.zToolChange)
	p.meta = other.meta
	return p
}

// Units returns the program units.
func (p *Program) Units() geom.Units {
	return p.units
}

// ZSafe returns the height where the tool can travel freely in x and y.
func (p *Program) ZSafe() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zSafe
}

// ZToolChange returns the height used for tool changes.
func (p *Program) ZToolChange() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zToolChange
}

// SetMeta attaches header metadata to the program.
func (p *Program) SetMeta(meta Meta) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meta = meta
}

// Meta returns the program metadata.
func (p *Program) Meta() Meta {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.meta
}

// Context returns the operation context for the tool, creating it and
// assigning the tool the next free ordering position on first use.
func (p *Program) Context(t tool.Tool) *Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureContext(t)
	return &Context{tool: t, program: p}
}

// Extend runs fn against the tool's context.
func (p *Program) Extend(t tool.Tool, fn func(*Context) error) error {
	return fn(p.Context(t))
}

// ensureContext creates the context state for the tool if missing; the
// program lock must be held.
func (p *Program) ensureContext(t tool.Tool) {
	if _, ok := p.contexts[t]; ok {
		return
	}

	p.contexts[t] = &contextState{
		units:       p.units,
		tool:        t,
		zSafe:       p.zSafe,
		zToolChange: p.zToolChange,
	}
	p.ordering.Auto(t)
}

// SetToolOrdering pins the tool to the given 1-based position in the
// tool change sequence.
func (p *Program) SetToolOrdering(t tool.Tool, position int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ordering.Set(t, position)
}

// ToolOrdering returns the position of the tool in the tool change
// sequence.
func (p *Program) ToolOrdering(t tool.Tool) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ordering.Position(t)
}

// Tools returns the program tools sorted by ordering position.
func (p *Program) Tools() []tool.Tool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ordering.Tools()
}

// Bounds returns the box covering every operation of every tool.
func (p *Program) Bounds() geom.Bounds {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.boundsLocked()
}

func (p *Program) boundsLocked() geom.Bounds {
	bounds := geom.MinMaxBounds()
	for _, state := range p.contexts {
		bounds = bounds.Union(state.bounds())
	}
	return bounds
}

// Merge applies all contexts of another program to this one. Both
// programs must use the same units; the merged program takes the more
// conservative travel heights of the two.
func (p *Program) Merge(other *Program) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if other != p {
		other.mu.Lock()
		defer other.mu.Unlock()
	}

	if p.units != other.units {
		return &MergeError{Message: "failed to merge due to mismatching units"}
	}

	if other.zSafe < p.zSafe {
		p.zSafe = other.zSafe
	}
	if other.zToolChange < p.zToolChange {
		p.zToolChange = other.zToolChange
	}

	for t, src := range other.contexts {
		p.ensureContext(t)
		if err := p.contexts[t].merge(src); err != nil {
			return err
		}
	}

	return nil
}

// ToInstructions emits the whole program. It fails when the travel
// heights would let the tool collide with the workpiece.
func (p *Program) ToInstructions() ([]gcode.Instruction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.zToolChange < p.zSafe {
		return nil, &SafetyError{Message: fmt.Sprintf(
			"tool change height %v must not be below the safe height %v",
			p.zToolChange,
			p.zSafe,
		)}
	}

	bounds := p.boundsLocked()
	if !bounds.IsEmpty() && p.zSafe < bounds.Max.Z {
		return nil, &SafetyError{Message: fmt.Sprintf(
			"safe height %v must not be below the workpiece top %v",
			p.zSafe,
			bounds.Max.Z,
		)}
	}

	raw := p.headerInstructions(bounds)

	raw = append(raw, unitsCode(p.units), gcode.PlaneXY{})

	for _, t := range p.ordering.Tools() {
		state, ok := p.contexts[t]
		if !ok || len(state.operations) == 0 {
			continue
		}

		position, _ := p.ordering.Position(t)

		raw = append(raw,
			gcode.Blank{},
			gcode.Comment{Text: fmt.Sprintf("Tool change: %s", t)},
			unitsCode(state.units),
			gcode.Rapid{Z: gcode.Num(state.zToolChange)},
			gcode.SpindleStop{},
			gcode.ToolChange{Slot: position},
			gcode.Speed{RPM: t.SpindleSpeed},
			spindleStart(t.Direction),
			gcode.Dwell{Duration: spindleDwell(t.SpindleSpeed)},
		)

		emitted, err := state.toInstructions()
		if err != nil {
			return nil, err
		}
		raw = append(raw, emitted...)
	}

	raw = append(raw,
		gcode.Rapid{Z: gcode.Num(p.zToolChange)},
		gcode.Blank{},
		gcode.End{},
	)

	return dedupe(raw), nil
}

// ToGcode renders the whole program as machine code text with a
// trailing newline.
func (p *Program) ToGcode() (string, error) {
	instructions, err := p.ToInstructions()
	if err != nil {
		return "", err
	}
	return gcode.Lines(instructions), nil
}

// headerInstructions renders the metadata and work area comments; the
// program lock must be held.
func (p *Program) headerInstructions(bounds geom.Bounds) []gcode.Instruction {
	var header []gcode.Instruction

	comment := func(format string, args ...any) {
		header = append(header, gcode.Comment{Text: fmt.Sprintf(format, args...)})
	}

	if p.meta.Name != "" {
		comment("Program: %s", p.meta.Name)
	}
	if p.meta.Description != "" {
		comment("Description: %s", p.meta.Description)
	}
	if p.meta.ID != uuid.Nil {
		comment("Id: %s", p.meta.ID)
	}
	if !p.meta.CreatedAt.IsZero() {
		comment("Created at: %s", p.meta.CreatedAt.UTC().Format(time.RFC3339))
	}
	if p.meta.Author != "" && p.meta.Host != "" {
		comment("Created by: %s@%s", p.meta.Author, p.meta.Host)
	} else if p.meta.Author != "" {
		comment("Created by: %s", p.meta.Author)
	}
	if p.meta.CommandLine != "" {
		comment("Command line: %s", p.meta.CommandLine)
	}

	if !bounds.IsEmpty() {
		size := bounds.Size()
		comment(
			"Work area: x = %s, y = %s, z = %s",
			measurement(size.X, p.units),
			measurement(size.Y, p.units),
			measurement(size.Z, p.units),
		)
		comment(
			"Min corner: x = %s, y = %s, z = %s",
			measurement(bounds.Min.X, p.units),
			measurement(bounds.Min.Y, p.units),
			measurement(bounds.Min.Z, p.units),
		)
		comment(
			"Max z: %s, z safe: %s, z tool change: %s",
			measurement(bounds.Max.Z, p.units),
			measurement(p.zSafe, p.units),
			measurement(p.zToolChange, p.units),
		)
	}

	return header
}

// measurement renders a value with the unit suffix used in comments.
func measurement(value float64, units geom.Units) string {
	if units == geom.Imperial {
		return fmt.Sprintf("%v%s", geom.Round(value), units)
	}
	return fmt.Sprintf("%v %s", geom.Round(value), units)
}

func unitsCode(units geom.Units) gcode.Instruction {
	if units == geom.Imperial {
		return gcode.UnitsInch{}
	}
	return gcode.UnitsMM{}
}

func spindleStart(direction geom.Direction) gcode.Instruction {
	if direction == geom.Counterclockwise {
		return gcode.SpindleCCW{}
	}
	return gcode.SpindleCW{}
}

// spindleDwell returns the settle time after starting the spindle,
// scaled linearly from 3 s at standstill to 20 s at 50000 rpm.
func spindleDwell(rpm float64) time.Duration {
	seconds := geom.Round(geom.Scale(rpm, 0.0, 50000.0, 3.0, 20.0))
	return time.Duration(seconds * float64(time.Second))
}

// dedupe drops instructions that are textually identical to their
// successor within a run and collapses workplane re-asserts. Switching
// planes is kept, re-selecting the active plane is not.
func dedupe(raw []gcode.Instruction) []gcode.Instruction {
	var workplane string
	instructions := make([]gcode.Instruction, 0, len(raw))

	for index, instruction := range raw {
		switch instruction.(type) {
		case gcode.PlaneXY, gcode.PlaneZX, gcode.PlaneYZ:
			code := instruction.Gcode()
			if code == workplane {
				continue
			}
			workplane = code
		}

		if index < len(raw)-1 && instruction.Gcode() == raw[index+1].Gcode() {
			continue
		}

		instructions = append(instructions, instruction)
	}

	return instructions
}
