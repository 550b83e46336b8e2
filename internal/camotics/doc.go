// Package camotics exports programs as Camotics simulation projects.
//
// Camotics (https://camotics.org/) opens a JSON project file that
// names the G-code files to simulate, the tools they use and the
// workpiece to carve from. FromProgram derives all of that from a
// compiled program so that a simulation can be opened without any
// manual setup.
package camotics
