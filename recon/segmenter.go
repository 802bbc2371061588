package recon

import (
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/vectile/dxf"
	"github.com/osuushi/vectile/geom"
)

// arcSamplesPerTurn is how finely a full circle is flattened. Sweeps get a
// proportional share, never fewer than minArcSamples.
const (
	arcSamplesPerTurn = 64
	minArcSamples     = 8
)

// Segments converts each entity into oriented segments in the shared working
// plane, scaled to millimeters. This is the exhaustive match over the entity
// union; an entity kind the switch doesn't know is a parser bug, not user
// data, so it only logs.
func Segments(entities []dxf.Entity, scale float64) []Segment {
	var out []Segment
	for _, entity := range entities {
		frame := NewFrame(entity.Normal())
		switch e := entity.(type) {
		case dxf.Line:
			a := frame.Project(e.Start, scale)
			b := frame.Project(e.End, scale)
			if a.DistanceTo(b) < geom.Tolerance {
				continue // zero-length lines are noise
			}
			out = append(out, LineSegment{A: a, B: b})

		case dxf.Circle:
			out = append(out, sampleArc(frame, e.Center, e.Radius, 0, 2*math.Pi, scale))

		case dxf.Arc:
			start := e.StartAngle * math.Pi / 180
			end := e.EndAngle * math.Pi / 180
			// The sweep always runs counterclockwise in the entity plane;
			// the format encodes "wraps past zero" as end < start.
			for end <= start {
				end += 2 * math.Pi
			}
			out = append(out, sampleArc(frame, e.Center, e.Radius, start, end, scale))

		case dxf.Ellipse:
			out = append(out, sampleEllipse(e, scale))

		case dxf.Polyline:
			out = append(out, polylineSegments(frame, e, scale)...)

		case dxf.Spline:
			out = append(out, splineSegment(frame, e, scale))

		default:
			log.Printf("recon: unhandled entity type %T", entity)
		}
	}
	return out
}

// sampleArc flattens a circular arc drawn in the entity's own plane. The
// frame projection handles tilt and handedness.
func sampleArc(frame Frame, center r3.Vec, radius, start, end float64, scale float64) CurveSegment {
	sweep := end - start
	n := int(math.Ceil(sweep / (2 * math.Pi) * arcSamplesPerTurn))
	if n < minArcSamples {
		n = minArcSamples
	}
	points := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := start + sweep*float64(i)/float64(n)
		local := r3.Vec{
			X: center.X + radius*math.Cos(t),
			Y: center.Y + radius*math.Sin(t),
			Z: center.Z,
		}
		points = append(points, frame.Project(local, scale))
	}
	return CurveSegment{Points: points}
}

// sampleEllipse uses the same parametric sampling as arcs, generalized for
// unequal axis radii and rotation. The ellipse's center and major axis are
// already world vectors; the minor axis is the normal crossed with the major
// axis, scaled by the axis ratio.
func sampleEllipse(e dxf.Ellipse, scale float64) CurveSegment {
	major := e.MajorAxis
	minor := r3.Scale(r3.Norm(major)*e.Ratio, r3.Unit(r3.Cross(e.Normal(), major)))
	sweep := e.End - e.Start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	n := int(math.Ceil(sweep / (2 * math.Pi) * arcSamplesPerTurn))
	if n < minArcSamples {
		n = minArcSamples
	}
	points := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := e.Start + sweep*float64(i)/float64(n)
		world := r3.Add(e.Center, r3.Add(r3.Scale(math.Cos(t), major), r3.Scale(math.Sin(t), minor)))
		points = append(points, geom.Point{X: world.X * scale, Y: world.Y * scale})
	}
	return CurveSegment{Points: points}
}

func polylineSegments(frame Frame, e dxf.Polyline, scale float64) []Segment {
	if len(e.Vertices) < 2 {
		return nil
	}
	projected := make([]geom.Point, len(e.Vertices))
	for i, v := range e.Vertices {
		projected[i] = frame.Project(v, scale)
	}
	var out []Segment
	for i := 0; i < len(projected)-1; i++ {
		if projected[i].DistanceTo(projected[i+1]) < geom.Tolerance {
			continue
		}
		out = append(out, LineSegment{A: projected[i], B: projected[i+1]})
	}
	if e.Closed {
		first, last := projected[0], projected[len(projected)-1]
		if first.DistanceTo(last) >= geom.Tolerance {
			out = append(out, LineSegment{A: last, B: first})
		}
	}
	return out
}

// splineSegment evaluates the spline with de Boor's algorithm and emits the
// flattened polyline as one curve segment. Malformed knot data falls back to
// straight runs between the raw control points.
func splineSegment(frame Frame, e dxf.Spline, scale float64) Segment {
	controls := make([]geom.Point, len(e.Controls))
	for i, c := range e.Controls {
		controls[i] = frame.Project(c, scale)
	}
	points := sampleSpline(e.Degree, e.Knots, controls)
	if points == nil {
		log.Printf("recon: malformed spline knot data, falling back to control polygon")
		points = controls
	}
	return CurveSegment{Points: points}
}
