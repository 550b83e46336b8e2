// Package geom provides the shared value types used across cnccoder:
// 2D/3D vectors, axis-aligned bounds, units, rotation direction, axis
// selection and tool path compensation.
//
// This package contains value types and arithmetic only. All other
// internal packages import geom; geom imports nothing internal, which
// keeps it the foundational layer with no circular dependencies.
package geom
