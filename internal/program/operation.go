package program

import (
	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/gcode"
	"github.com/tirithen/cnccoder/internal/geom"
)

// Operation is one program level entry declared against a tool. The
// set of operations is closed.
type Operation interface {
	// Bounds returns the box the operation touches. Non cutting
	// operations report a zero box.
	Bounds() geom.Bounds

	// ToInstructions emits the instructions for the operation.
	ToInstructions(ctx cut.Context) ([]gcode.Instruction, error)

	isOperation()
}

// CutOperation performs a cut.
type CutOperation struct {
	Cut cut.Cut
}

func (o CutOperation) Bounds() geom.Bounds {
	return o.Cut.Bounds()
}

func (o CutOperation) ToInstructions(ctx cut.Context) ([]gcode.Instruction, error) {
	return o.Cut.ToInstructions(ctx)
}

func (CutOperation) isOperation() {}

// CommentOperation writes a comment line into the output.
type CommentOperation struct {
	Text string
}

func (o CommentOperation) Bounds() geom.Bounds {
	return geom.Bounds{}
}

func (o CommentOperation) ToInstructions(cut.Context) ([]gcode.Instruction, error) {
	return []gcode.Instruction{gcode.Comment{Text: o.Text}}, nil
}

func (CommentOperation) isOperation() {}

// MessageOperation writes an operator message into the output.
type MessageOperation struct {
	Text string
}

func (o MessageOperation) Bounds() geom.Bounds {
	return geom.Bounds{}
}

func (o MessageOperation) ToInstructions(cut.Context) ([]gcode.Instruction, error) {
	return []gcode.Instruction{gcode.Message{Text: o.Text}}, nil
}

func (MessageOperation) isOperation() {}

// BlankOperation writes an empty line into the output.
type BlankOperation struct{}

func (o BlankOperation) Bounds() geom.Bounds {
	return geom.Bounds{}
}

func (o BlankOperation) ToInstructions(cut.Context) ([]gcode.Instruction, error) {
	return []gcode.Instruction{gcode.Blank{}}, nil
}

func (BlankOperation) isOperation() {}
