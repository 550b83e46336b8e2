package geom

// Bounds represents an axis-aligned box in 3D space described by one
// min and one max point.
type Bounds struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// NewBounds creates a box starting at the origin and ending at the
// given coordinates.
func NewBounds(x, y, z float64) Bounds {
	return Bounds{Min: Vector3{}, Max: V3(x, y, z)}
}

// MinMaxBounds returns the empty sentinel box, min at +MaxFloat64 and
// max at -MaxFloat64 on every axis. Folding points into it with Union
// then works by plain comparison without a first-element special case.
func MinMaxBounds() Bounds {
	return Bounds{Min: MaxVector3(), Max: MinVector3()}
}

// IsEmpty reports whether the box still is the untouched sentinel on
// every axis.
func (b Bounds) IsEmpty() bool {
	return b.Min == MaxVector3() && b.Max == MinVector3()
}

// Size returns the extent of the box as a Vector3.
func (b Bounds) Size() Vector3 {
	return V3(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z)
}

// Union folds another box into this one, returning the smallest box
// covering both.
func (b Bounds) Union(other Bounds) Bounds {
	if other.Min.X < b.Min.X {
		b.Min.X = other.Min.X
	}
	if other.Min.Y < b.Min.Y {
		b.Min.Y = other.Min.Y
	}
	if other.Min.Z < b.Min.Z {
		b.Min.Z = other.Min.Z
	}
	if other.Max.X > b.Max.X {
		b.Max.X = other.Max.X
	}
	if other.Max.Y > b.Max.Y {
		b.Max.Y = other.Max.Y
	}
	if other.Max.Z > b.Max.Z {
		b.Max.Z = other.Max.Z
	}
	return b
}

// ExpandPoint folds a single point into the box.
func (b Bounds) ExpandPoint(p Vector3) Bounds {
	return b.Union(Bounds{Min: p, Max: p})
}
