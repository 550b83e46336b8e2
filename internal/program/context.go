package program

import (
	"fmt"

	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

// contextState holds the operations and travel heights bound to one
// tool. All access goes through the owning program's lock.
type contextState struct {
	units       geom.Units
	tool        tool.Tool
	zSafe       float64
	zToolChange float64
	operations  []Operation
}

// merge applies the operations and travel heights of src. Units and
// tool must match.
func (s *contextState) merge(src *contextState) error {
	if s.units != src.units {
		return &MergeError{Message: "failed to merge due to mismatching units"}
	}

	if s.tool != src.tool {
		return &MergeError{Message: fmt.Sprintf("failed to merge due to mismatching tools: %s and %s", s.tool, src.tool)}
	}

	s.zSafe = src.zSafe
	s.zToolChange = src.zToolChange
	s.operations = append(s.operations, src.operations...)

	return nil
}

func (s *contextState) bounds() geom.Bounds {
	bounds := geom.MinMaxBounds()
	for _, operation := range s.operations {
		bounds = bounds.Union(operation.Bounds())
	}
	return bounds
}

func (s *contextState) toInstructions() ([]gcode.Instruction, error) {
	ctx := cut.Context{
		Units: s.units,
		Tool:  s.tool,
		ZSafe: s.zSafe,
	}

	var instructions []gcode.Instruction
	for _, operation := range s.operations {
		emitted, err := operation.ToInstructions(ctx)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, emitted...)
	}

	return instructions, nil
}

// Context is a handle for declaring operations against one tool of a
// program. Handles are cheap views; all state lives in the program.
type Context struct {
	tool    tool.Tool
	program *Program
}

// Tool returns the tool the context is bound to.
func (c *Context) Tool() tool.Tool {
	return c.tool
}

// Units returns the units used by the context.
func (c *Context) Units() geom.Units {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	return c.state().units
}

// ZSafe returns the height where the tool can travel freely in x and y.
func (c *Context) ZSafe() float64 {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	return c.state().zSafe
}

// ZToolChange returns the height used for tool changes.
func (c *Context) ZToolChange() float64 {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	return c.state().zToolChange
}

// Append adds an operation to the context.
func (c *Context) Append(operation Operation) {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	state := c.state()
	state.operations = append(state.operations, operation)
}

// AppendCut adds a cut operation to the context.
func (c *Context) AppendCut(cutting cut.Cut) {
	c.Append(CutOperation{Cut: cutting})
}

// AppendComment adds a comment operation to the context.
func (c *Context) AppendComment(text string) {
	c.Append(CommentOperation{Text: text})
}

// AppendMessage adds an operator message operation to the context.
func (c *Context) AppendMessage(text string) {
	c.Append(MessageOperation{Text: text})
}

// Merge applies the operations of another context to this one. Both
// contexts must use the same units and tool.
func (c *Context) Merge(other *Context) error {
	dst, src := c.program, other.program
	dst.mu.Lock()
	defer dst.mu.Unlock()
	if src != dst {
		src.mu.Lock()
		defer src.mu.Unlock()
	}

	return c.state().merge(other.state())
}

// Bounds returns the box covering all operations of the context.
func (c *Context) Bounds() geom.Bounds {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	return c.state().bounds()
}

// Operations returns the declared operations in order.
func (c *Context) Operations() []Operation {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	state := c.state()
	operations := make([]Operation, len(state.operations))
	copy(operations, state.operations)
	return operations
}

// ToInstructions emits the instructions for the context's operations.
func (c *Context) ToInstructions() ([]gcode.Instruction, error) {
	c.program.mu.Lock()
	defer c.program.mu.Unlock()
	return c.state().toInstructions()
}

// state returns the backing state; the program lock must be held.
func (c *Context) state() *contextState {
	return c.program.contexts[c.tool]
}
