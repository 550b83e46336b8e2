// Package tool describes cutter configurations and the order in which
// tools are visited during program assembly.
//
// Tool is a plain comparable value so it can key maps directly. Two
// tools are the same tool exactly when every field matches bit for bit.
package tool
