package cut

import (
	"errors"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

// Context carries the machining parameters a cut needs to emit
// instructions. Cuts never move below their own depth targets or above
// ZSafe while working.
type Context struct {
	Units geom.Units
	Tool  tool.Tool
	ZSafe float64
}

// Geometry error codes.
const (
	// CodeToolTooWide means the configured tool does not fit the shape.
	CodeToolTooWide = "tool_too_wide"
	// CodeArcMismatch means an arc's endpoints are not equidistant from
	// its center.
	CodeArcMismatch = "arc_mismatch"
)

// GeometryError reports a cut that cannot be machined as described.
type GeometryError struct {
	Code    string
	Message string
}

func (e *GeometryError) Error() string {
	return e.Message
}

// IsGeometryError reports whether err is a GeometryError with the given
// code.
func IsGeometryError(err error, code string) bool {
	var geometryErr *GeometryError
	return errors.As(err, &geometryErr) && geometryErr.Code == code
}
