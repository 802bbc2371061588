// Package offset grows and shrinks polygons-with-holes by a fixed
// perpendicular distance using mitered joins. The heavy lifting happens in
// an integer-robust clipping library; this package owns the fixed-point
// conversion and re-derives the solid/hole classification afterwards, since
// offsetting can merge, split, or invert rings.
package offset

import (
	"math"

	clipper "github.com/aligator/go.clipper"

	"github.com/osuushi/vectile/geom"
)

// clipperScale is the fixed-point factor: 1000 steps per millimeter, so the
// clipper works at 0.001 mm precision.
const clipperScale = 1000

// minResultArea filters degenerate rings coming back from the clipper, in mm².
const minResultArea = 1e-4

// Polygon offsets p by distance (positive grows, negative shrinks) and
// returns zero or more polygons. An empty result is a valid outcome, not an
// error: shrinking a small solid past its width simply leaves nothing.
func Polygon(p geom.Polygon, distance float64) []geom.Polygon {
	offsetter := clipper.NewClipperOffset()
	offsetter.MiterLimit = 2
	offsetter.AddPaths(toPaths(p), clipper.JtMiter, clipper.EtClosedPolygon)
	result := offsetter.Execute(distance * clipperScale)
	if len(result) == 0 {
		return nil
	}
	return classify(result)
}

func toPaths(p geom.Polygon) clipper.Paths {
	paths := make(clipper.Paths, 0, 1+len(p.Holes))
	paths = append(paths, toPath(p.Outer))
	for _, h := range p.Holes {
		paths = append(paths, toPath(h))
	}
	return paths
}

func toPath(l geom.Loop) clipper.Path {
	path := make(clipper.Path, 0, len(l))
	for _, pt := range l {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X * clipperScale)),
			Y: clipper.CInt(math.Round(pt.Y * clipperScale)),
		})
	}
	return path
}

func toLoop(path clipper.Path) geom.Loop {
	loop := make(geom.Loop, 0, len(path))
	for _, pt := range path {
		loop = append(loop, geom.Point{
			X: float64(pt.X) / clipperScale,
			Y: float64(pt.Y) / clipperScale,
		})
	}
	return loop
}

// classify rebuilds polygons from the clipper's flat ring soup: positive
// signed area means a new outer boundary, negative a hole. Each hole is
// attached to the outer that contains a representative vertex of it.
func classify(result clipper.Paths) []geom.Polygon {
	var outers []geom.Polygon
	var holes []geom.Loop
	for _, path := range result {
		if len(path) < 3 {
			continue
		}
		loop := toLoop(path)
		area := loop.SignedArea()
		if math.Abs(area) < minResultArea {
			continue
		}
		if area > 0 {
			outers = append(outers, geom.Polygon{Outer: loop})
		} else {
			holes = append(holes, loop)
		}
	}

	for _, hole := range holes {
		for i := range outers {
			if outers[i].Outer.ContainsPoint(hole[0]) {
				outers[i].Holes = append(outers[i].Holes, hole)
				break
			}
		}
		// A hole no outer claims is clipper debris; drop it.
	}

	for i := range outers {
		outers[i] = outers[i].Normalized()
	}
	return outers
}
