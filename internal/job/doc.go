// Package job loads declarative job files and compiles them into
// programs.
//
// A job file is a YAML document naming the machine setup, the tools
// and a list of operations. Tools are either declared inline or
// resolved by name from a tool catalog. Building a job produces a
// program ready to render or write to disk.
package job
