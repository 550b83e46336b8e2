// Package program assembles per-tool operation groups into a single
// validated machine program.
//
// Operations are declared against a tool through a Context and are
// emitted grouped by tool, in tool ordering position order, with a
// tool change block between groups. Emission is a pure function of the
// program state so repeated calls produce identical output.
package program
