package recon

import "github.com/osuushi/vectile/geom"

// PathBuilder is the sink segments emit into. It is the MoveTo/LineTo subset
// of a drawing context; *gg.Context satisfies it directly, which is what the
// dbg package leans on.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Segment is directionless geometry with two renderable orientations, so the
// stitcher can traverse it either way. Emission appends everything after the
// starting endpoint; the caller is responsible for the initial MoveTo when
// starting a fresh chain. The offset parameter is subtracted from every
// coordinate (it carries the centering translation).
type Segment interface {
	Start() geom.Point
	End() geom.Point
	Emit(pb PathBuilder, offset geom.Point)
	EmitReverse(pb PathBuilder, offset geom.Point)
}

// LineSegment is a straight segment between two points.
type LineSegment struct {
	A, B geom.Point
}

func (s LineSegment) Start() geom.Point { return s.A }
func (s LineSegment) End() geom.Point   { return s.B }

func (s LineSegment) Emit(pb PathBuilder, offset geom.Point) {
	pb.LineTo(s.B.X-offset.X, s.B.Y-offset.Y)
}

func (s LineSegment) EmitReverse(pb PathBuilder, offset geom.Point) {
	pb.LineTo(s.A.X-offset.X, s.A.Y-offset.Y)
}

// CurveSegment is a curve already sampled into a polyline: arcs, circles,
// ellipses and splines all reduce to this. A closed curve (circle, full
// ellipse) has equal first and last points and stitches as an
// already-closed loop.
type CurveSegment struct {
	Points []geom.Point
}

func (s CurveSegment) Start() geom.Point { return s.Points[0] }
func (s CurveSegment) End() geom.Point   { return s.Points[len(s.Points)-1] }

func (s CurveSegment) Emit(pb PathBuilder, offset geom.Point) {
	for _, p := range s.Points[1:] {
		pb.LineTo(p.X-offset.X, p.Y-offset.Y)
	}
}

func (s CurveSegment) EmitReverse(pb PathBuilder, offset geom.Point) {
	for i := len(s.Points) - 2; i >= 0; i-- {
		pb.LineTo(s.Points[i].X-offset.X, s.Points[i].Y-offset.Y)
	}
}

// SelfClosed reports whether a segment's endpoints coincide, meaning it is a
// complete loop on its own.
func SelfClosed(s Segment) bool {
	return s.Start().DistanceTo(s.End()) < geom.Tolerance
}
