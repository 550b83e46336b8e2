// Package toolstore keeps a named catalog of cutter configurations.
//
// The catalog is a small SQLite database so that job files can refer
// to tools by name instead of repeating the full cutter geometry, and
// so the same catalog can be shared between projects.
package toolstore
