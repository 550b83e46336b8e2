// Package project persists compiled programs to disk.
//
// A project is written as two sibling files, <name>.gcode with the
// rendered instruction stream and <name>.camotics with a matching
// simulation project, so that the result can be sent to a machine and
// previewed in Camotics without further setup.
package project
