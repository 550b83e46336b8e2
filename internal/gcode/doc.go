// Package gcode defines the instruction set emitted by the compiler and
// its textual serialization.
//
// Instructions form a closed union over the G and M words the generated
// programs use. Every numeric parameter is rounded to micrometer
// precision before rendering so that output is stable across runs.
package gcode
