package gcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoveSerialization(t *testing.T) {
	assert.Equal(t, "G0 X10 Y20 Z30", Rapid{X: Num(10.0), Y: Num(20.0), Z: Num(30.0)}.Gcode())
	assert.Equal(t, "G0 Z50", Rapid{Z: Num(50.0)}.Gcode(), "absent axes are omitted")
	assert.Equal(t, "G1 X23 Y12 Z-0.1 F400", Linear{X: Num(23.0), Y: Num(12.0), Z: Num(-0.1), Feed: Num(400.0)}.Gcode())
	assert.Equal(t, "G1 Z-0", Linear{Z: Num(-0.0000001)}.Gcode(), "negative zero keeps its sign")
}

func TestArcSerialization(t *testing.T) {
	assert.Equal(t,
		"G2 X-0.099 Z-1 I2.501 J0 P1",
		ArcCW{X: Num(-0.099), Z: Num(-1.0), I: Num(2.501), J: Num(0.0), P: Num(1.0)}.Gcode(),
	)
	assert.Equal(t,
		"G2 X5 R2.5",
		ArcCW{X: Num(5.0), R: Num(2.5), I: Num(9.0), J: Num(9.0)}.Gcode(),
		"radius form suppresses center offsets",
	)
	assert.Equal(t,
		"G3 X-10 Y10 I0 J10 F400",
		ArcCCW{X: Num(-10.0), Y: Num(10.0), I: Num(0.0), J: Num(10.0), Feed: Num(400.0)}.Gcode(),
	)
}

func TestRoundingInParameters(t *testing.T) {
	assert.Equal(t, "G1 X1.236", Linear{X: Num(1.235567774)}.Gcode())
	assert.Equal(t, "G0 X50", Rapid{X: Num(50.0)}.Gcode())
}

func TestModalWords(t *testing.T) {
	assert.Equal(t, "G17", PlaneXY{}.Gcode())
	assert.Equal(t, "G18", PlaneZX{}.Gcode())
	assert.Equal(t, "G19", PlaneYZ{}.Gcode())
	assert.Equal(t, "G20", UnitsInch{}.Gcode())
	assert.Equal(t, "G21", UnitsMM{}.Gcode())
	assert.Equal(t, "G43 H2", ToolLengthOffset{Slot: 2}.Gcode())
	assert.Equal(t, "F400", Feed{Rate: 400.0}.Gcode())
	assert.Equal(t, "S5000", Speed{RPM: 5000.0}.Gcode())
}

func TestMachineWords(t *testing.T) {
	assert.Equal(t, "M0", Pause{}.Gcode())
	assert.Equal(t, "M2", End{}.Gcode())
	assert.Equal(t, "M3", SpindleCW{}.Gcode())
	assert.Equal(t, "M4", SpindleCCW{}.Gcode())
	assert.Equal(t, "M5", SpindleStop{}.Gcode())
	assert.Equal(t, "T1 M6", ToolChange{Slot: 1}.Gcode())
}

func TestDwell(t *testing.T) {
	assert.Equal(t, "G4 P4.7", Dwell{Duration: 4700 * time.Millisecond}.Gcode())
	assert.Equal(t, "G4 P0.5", Dwell{Duration: 500 * time.Millisecond}.Gcode())
}

func TestCommentsAndMessages(t *testing.T) {
	assert.Equal(t, ";(Cut path at: {x: 0, y: 0})", Comment{Text: "Cut path at: {x: 0, y: 0}"}.Gcode())
	assert.Equal(t, "", Comment{}.Gcode())
	assert.Equal(t, "", Blank{}.Gcode())
	assert.Equal(t, "(MSG,Change to tool 2)", Message{Text: "Change to tool 2"}.Gcode())
}

func TestLines(t *testing.T) {
	text := Lines([]Instruction{
		UnitsMM{},
		Blank{},
		Rapid{Z: Num(10.0)},
	})

	assert.Equal(t, "G21\n\nG0 Z10\n", text)
}
