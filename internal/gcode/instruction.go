package gcode

import (
	"fmt"
	"strings"
	"time"
)

// Instruction is a single line of a generated program. The set of
// instructions is closed; all implementations live in this package.
type Instruction interface {
	// Gcode renders the instruction as a single line without trailing
	// newline. Blank instructions render as the empty string.
	Gcode() string

	isInstruction()
}

// words assembles an instruction line from a leading code word and
// optional parameters, skipping absent ones.
type words struct {
	b strings.Builder
}

func newWords(code string) *words {
	w := &words{}
	w.b.WriteString(code)
	return w
}

func (w *words) param(letter string, n Number) *words {
	if n.set {
		w.b.WriteByte(' ')
		w.b.WriteString(letter)
		w.b.WriteString(formatFloat(n.value))
	}
	return w
}

func (w *words) String() string {
	return w.b.String()
}

// Rapid is a G0 rapid move. Omitted axes keep their current position.
type Rapid struct {
	X Number
	Y Number
	Z Number
}

func (i Rapid) Gcode() string {
	return newWords("G0").param("X", i.X).param("Y", i.Y).param("Z", i.Z).String()
}

func (Rapid) isInstruction() {}

// Linear is a G1 linear feed move.
type Linear struct {
	X    Number
	Y    Number
	Z    Number
	Feed Number
}

func (i Linear) Gcode() string {
	return newWords("G1").param("X", i.X).param("Y", i.Y).param("Z", i.Z).param("F", i.Feed).String()
}

func (Linear) isInstruction() {}

// ArcCW is a G2 clockwise arc in the selected plane. When R is present
// it takes precedence over the I, J and K center offsets.
type ArcCW struct {
	X    Number
	Y    Number
	Z    Number
	R    Number
	I    Number
	J    Number
	K    Number
	P    Number
	Feed Number
}

func (i ArcCW) Gcode() string {
	return arcWords("G2", i.X, i.Y, i.Z, i.R, i.I, i.J, i.K, i.P, i.Feed)
}

func (ArcCW) isInstruction() {}

// ArcCCW is a G3 counterclockwise arc in the selected plane.
type ArcCCW struct {
	X    Number
	Y    Number
	Z    Number
	R    Number
	I    Number
	J    Number
	K    Number
	P    Number
	Feed Number
}

func (i ArcCCW) Gcode() string {
	return arcWords("G3", i.X, i.Y, i.Z, i.R, i.I, i.J, i.K, i.P, i.Feed)
}

func (ArcCCW) isInstruction() {}

func arcWords(code string, x, y, z, r, i, j, k, p, feed Number) string {
	w := newWords(code).param("X", x).param("Y", y).param("Z", z)
	if r.set {
		w.param("R", r)
	} else {
		w.param("I", i).param("J", j).param("K", k)
	}
	return w.param("P", p).param("F", feed).String()
}

// Dwell is a G4 pause for the given duration.
type Dwell struct {
	Duration time.Duration
}

func (i Dwell) Gcode() string {
	return "G4 P" + formatFloat(i.Duration.Seconds())
}

func (Dwell) isInstruction() {}

// PlaneXY selects the XY workplane (G17).
type PlaneXY struct{}

func (PlaneXY) Gcode() string { return "G17" }

func (PlaneXY) isInstruction() {}

// PlaneZX selects the ZX workplane (G18).
type PlaneZX struct{}

func (PlaneZX) Gcode() string { return "G18" }

func (PlaneZX) isInstruction() {}

// PlaneYZ selects the YZ workplane (G19).
type PlaneYZ struct{}

func (PlaneYZ) Gcode() string { return "G19" }

func (PlaneYZ) isInstruction() {}

// UnitsInch switches measurements to imperial units (G20).
type UnitsInch struct{}

func (UnitsInch) Gcode() string { return "G20" }

func (UnitsInch) isInstruction() {}

// UnitsMM switches measurements to metric units (G21).
type UnitsMM struct{}

func (UnitsMM) Gcode() string { return "G21" }

func (UnitsMM) isInstruction() {}

// ToolLengthOffset applies the stored length offset for a tool slot
// (G43).
type ToolLengthOffset struct {
	Slot int
}

func (i ToolLengthOffset) Gcode() string {
	return fmt.Sprintf("G43 H%d", i.Slot)
}

func (ToolLengthOffset) isInstruction() {}

// Feed sets the feed rate for subsequent moves.
type Feed struct {
	Rate float64
}

func (i Feed) Gcode() string {
	return "F" + formatFloat(i.Rate)
}

func (Feed) isInstruction() {}

// Speed sets the spindle speed in revolutions per minute.
type Speed struct {
	RPM float64
}

func (i Speed) Gcode() string {
	return "S" + formatFloat(i.RPM)
}

func (Speed) isInstruction() {}

// Pause stops the program until the operator resumes it (M0).
type Pause struct{}

func (Pause) Gcode() string { return "M0" }

func (Pause) isInstruction() {}

// End terminates the program (M2).
type End struct{}

func (End) Gcode() string { return "M2" }

func (End) isInstruction() {}

// SpindleCW starts the spindle clockwise (M3).
type SpindleCW struct{}

func (SpindleCW) Gcode() string { return "M3" }

func (SpindleCW) isInstruction() {}

// SpindleCCW starts the spindle counterclockwise (M4).
type SpindleCCW struct{}

func (SpindleCCW) Gcode() string { return "M4" }

func (SpindleCCW) isInstruction() {}

// SpindleStop stops the spindle (M5).
type SpindleStop struct{}

func (SpindleStop) Gcode() string { return "M5" }

func (SpindleStop) isInstruction() {}

// ToolChange selects a tool slot and triggers a tool change (T M6).
type ToolChange struct {
	Slot int
}

func (i ToolChange) Gcode() string {
	return fmt.Sprintf("T%d M6", i.Slot)
}

func (ToolChange) isInstruction() {}

// Blank is an empty line used to separate sections of the output.
type Blank struct{}

func (Blank) Gcode() string { return "" }

func (Blank) isInstruction() {}

// Comment is a line-level remark. An empty comment renders as a blank
// line.
type Comment struct {
	Text string
}

func (i Comment) Gcode() string {
	if i.Text == "" {
		return ""
	}
	return ";(" + i.Text + ")"
}

func (Comment) isInstruction() {}

// Message is a comment displayed to the machine operator.
type Message struct {
	Text string
}

func (i Message) Gcode() string {
	return "(MSG," + i.Text + ")"
}

func (Message) isInstruction() {}

// Lines renders instructions as newline joined G-code text with a
// trailing newline.
func Lines(instructions []Instruction) string {
	var b strings.Builder
	for _, instruction := range instructions {
		b.WriteString(instruction.Gcode())
		b.WriteByte('\n')
	}
	return b.String()
}
