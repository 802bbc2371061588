// Package dxf reads the entity section of an ASCII DXF drawing into a small
// tagged union of geometric primitives, plus the document's length unit. It
// is not a general DXF library: it parses exactly what the reconstruction
// engine consumes and skips everything else.
package dxf

import "gonum.org/v1/gonum/spatial/r3"

// Entity is the closed set of supported primitives. Each variant carries
// exactly the fields its kind needs; coordinates are raw OCS values, unit
// conversion and planar projection happen later in the recon package.
type Entity interface {
	// Normal is the entity's extrusion direction, defining its local planar
	// frame (the arbitrary-axis convention).
	Normal() r3.Vec
}

// common holds the fields every entity shares. The extrusion direction
// defaults to +Z when the 210/220/230 codes are absent.
type common struct {
	Extrusion r3.Vec
}

func (c common) Normal() r3.Vec {
	if c.Extrusion == (r3.Vec{}) {
		return r3.Vec{Z: 1}
	}
	return c.Extrusion
}

type Line struct {
	common
	Start, End r3.Vec
}

type Circle struct {
	common
	Center r3.Vec
	Radius float64
}

// Arc angles are degrees, counterclockwise in the entity's own plane, per
// the format. EndAngle may be numerically smaller than StartAngle; the sweep
// always runs counterclockwise from start to end.
type Arc struct {
	common
	Center               r3.Vec
	Radius               float64
	StartAngle, EndAngle float64
}

// Ellipse's MajorAxis is the vector from the center to the major axis
// endpoint; Ratio is minor/major. Start and End are parametric angles in
// radians (0 and 2π for a full ellipse).
type Ellipse struct {
	common
	Center     r3.Vec
	MajorAxis  r3.Vec
	Ratio      float64
	Start, End float64
}

type Polyline struct {
	common
	Vertices []r3.Vec
	Closed   bool
}

type Spline struct {
	common
	Degree   int
	Knots    []float64
	Controls []r3.Vec
	Closed   bool
}
