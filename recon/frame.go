// Package recon turns parsed CAD entities into classified 2D polygons: it
// normalizes units and planar frames, segments each primitive, stitches
// segments into closed loops, and classifies loops into solids and holes.
package recon

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/vectile/geom"
)

// Frame is an entity's local planar basis derived from its extrusion normal
// via the exchange format's arbitrary-axis convention. Entities drawn in a
// tilted plane project through their frame into the shared working plane.
type Frame struct {
	Ax, Ay, N r3.Vec
}

// arbitraryAxisThreshold is 1/64, the convention's cutoff for treating the
// normal as "close to the world Z axis".
const arbitraryAxisThreshold = 1.0 / 64.0

func NewFrame(normal r3.Vec) Frame {
	n := r3.Unit(normal)
	var ax r3.Vec
	if abs(n.X) < arbitraryAxisThreshold && abs(n.Y) < arbitraryAxisThreshold {
		ax = r3.Unit(r3.Cross(r3.Vec{Y: 1}, n))
	} else {
		ax = r3.Unit(r3.Cross(r3.Vec{Z: 1}, n))
	}
	ay := r3.Unit(r3.Cross(n, ax))
	return Frame{Ax: ax, Ay: ay, N: n}
}

// Project maps an entity-local (OCS) point into the working plane and scales
// it to millimeters. The world point is x·Ax + y·Ay + z·N; z is discarded
// after the transform since all supported entities are planar. A frame whose
// normal points away from the viewer (negative Z basis) naturally mirrors
// its entities here, which is what keeps arcs sweeping the visually correct
// way without a special case.
func (f Frame) Project(local r3.Vec, scale float64) geom.Point {
	world := r3.Add(
		r3.Add(r3.Scale(local.X, f.Ax), r3.Scale(local.Y, f.Ay)),
		r3.Scale(local.Z, f.N),
	)
	return geom.Point{X: world.X * scale, Y: world.Y * scale}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
