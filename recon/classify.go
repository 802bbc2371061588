package recon

import (
	"math"
	"sort"

	"github.com/osuushi/vectile/geom"
)

// minLoopArea is the noise threshold in mm². Real-world drawings are full of
// near-zero-area slivers (double-traced edges, collapsed fillets) that would
// otherwise become phantom holes.
const minLoopArea = 1e-4

// containmentSamples is how many points along a child loop vote on
// containment. A single probe can land exactly on the parent's boundary and
// give a false answer; a few votes make that vanishingly unlikely.
const containmentSamples = 5

type classifiedLoop struct {
	loop geom.Loop
	area float64
	// For a solid loop, polygon is its index in the output; for a hole it is
	// the polygon the hole belongs to.
	hole    bool
	polygon int
}

// Classify decides which stitched loops are solid outlines and which are
// holes, producing polygons with conventional winding (outer CCW, holes CW).
// Nesting alternates solid/hole/solid to arbitrary depth: a loop inside a
// hole is an island and becomes a standalone polygon.
func Classify(loops []geom.Loop) []geom.Polygon {
	candidates := make([]classifiedLoop, 0, len(loops))
	for _, loop := range loops {
		area := loop.SignedArea()
		if math.Abs(area) < minLoopArea {
			continue
		}
		candidates = append(candidates, classifiedLoop{loop: loop, area: area})
	}
	// Largest first, so every possible parent is classified before its
	// children come up.
	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].area) > math.Abs(candidates[j].area)
	})

	var polygons []geom.Polygon
	for i := range candidates {
		child := &candidates[i]
		parent := findParent(candidates[:i], child.loop)
		switch {
		case parent == nil:
			// No container: standalone solid.
			child.polygon = len(polygons)
			polygons = append(polygons, geom.Polygon{Outer: child.loop})
		case !parent.hole:
			// Contained by a solid: this loop is one of its holes.
			child.hole = true
			child.polygon = parent.polygon
			polygons[parent.polygon].Holes = append(polygons[parent.polygon].Holes, child.loop)
		default:
			// Contained by a hole: an island, promoted to its own polygon.
			child.polygon = len(polygons)
			polygons = append(polygons, geom.Polygon{Outer: child.loop})
		}
	}

	out := make([]geom.Polygon, len(polygons))
	for i, p := range polygons {
		out[i] = p.Normalized()
	}
	return out
}

// findParent returns the innermost already-classified loop containing the
// child, or nil. Candidates are sorted by area descending, so scanning from
// the end finds the tightest container first.
func findParent(processed []classifiedLoop, child geom.Loop) *classifiedLoop {
	for i := len(processed) - 1; i >= 0; i-- {
		if loopContains(processed[i].loop, child) {
			return &processed[i]
		}
	}
	return nil
}

// loopContains takes a majority vote over sample points of the child.
func loopContains(parent, child geom.Loop) bool {
	samples := child.SamplePoints(containmentSamples)
	if len(samples) == 0 {
		return false
	}
	inside := 0
	for _, p := range samples {
		if parent.ContainsPoint(p) {
			inside++
		}
	}
	return inside*2 > len(samples)
}
