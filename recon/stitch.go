package recon

import (
	"log"

	"github.com/osuushi/vectile/geom"
)

// StitchTolerance is how far apart two endpoints may be and still count as
// the same point, in millimeters. Real-world drawings are sloppy at well
// below visual scale; 0.15 mm catches them without gluing distinct corners.
const StitchTolerance = 0.15

// StitchedLoop is a closed loop plus whether it had to be force-closed. A
// forced closure means the segment chain never found its way back to its
// seed and an implicit straight edge closes it; downstream still gets a
// watertight polygon, but the flag keeps the artifact visible.
type StitchedLoop struct {
	Loop         geom.Loop
	ForcedClosed bool
}

type orientedSegment struct {
	segment  Segment
	reversed bool
}

// pathCollector is a PathBuilder that just accumulates points.
type pathCollector struct {
	points []geom.Point
}

func (c *pathCollector) MoveTo(x, y float64) {
	c.points = append(c.points, geom.Point{X: x, Y: y})
}

func (c *pathCollector) LineTo(x, y float64) {
	c.points = append(c.points, geom.Point{X: x, Y: y})
}

// Stitch reconstructs closed loops from an unordered bag of segments whose
// only known relationship is shared endpoints. Each call works from its own
// fresh visited set; nothing is shared between reconstructions.
//
// After stitching, the union bounding box of all loop points is computed and
// its center subtracted from every coordinate, so the reconstructed geometry
// is centered at the origin.
func Stitch(segments []Segment) []StitchedLoop {
	visited := make(map[int]bool, len(segments))
	var loops []StitchedLoop
	forced := 0

	for seed := range segments {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		chain := []orientedSegment{{segments[seed], false}}
		seedStart := segments[seed].Start()
		runningEnd := segments[seed].End()
		closed := runningEnd.DistanceTo(seedStart) < StitchTolerance

		// The step bound guards against malformed input that would otherwise
		// chase matches forever.
		for steps := 0; !closed && steps < 2*len(segments); steps++ {
			matched := false
			for j, candidate := range segments {
				if visited[j] {
					continue
				}
				if candidate.Start().DistanceTo(runningEnd) < StitchTolerance {
					visited[j] = true
					chain = append(chain, orientedSegment{candidate, false})
					runningEnd = candidate.End()
					matched = true
				} else if candidate.End().DistanceTo(runningEnd) < StitchTolerance {
					visited[j] = true
					chain = append(chain, orientedSegment{candidate, true})
					runningEnd = candidate.Start()
					matched = true
				}
				if matched {
					break
				}
			}
			if !matched {
				break
			}
			if runningEnd.DistanceTo(seedStart) < StitchTolerance {
				closed = true
			}
		}

		loop := materializeChain(chain)
		if len(loop) == 0 {
			continue
		}
		if !closed {
			forced++
		}
		loops = append(loops, StitchedLoop{Loop: loop, ForcedClosed: !closed})
	}

	if forced > 0 {
		log.Printf("recon: force-closed %d open loop(s); input had dangling endpoints", forced)
	}
	return center(loops)
}

// materializeChain walks the chain through each segment's emitter and cleans
// the result: consecutive duplicates collapse, and a final point that
// returns to the start is dropped (loops close implicitly).
func materializeChain(chain []orientedSegment) geom.Loop {
	var collector pathCollector
	start := chain[0].segment.Start()
	collector.MoveTo(start.X, start.Y)
	for _, entry := range chain {
		if entry.reversed {
			entry.segment.EmitReverse(&collector, geom.Point{})
		} else {
			entry.segment.Emit(&collector, geom.Point{})
		}
	}

	var loop geom.Loop
	for _, p := range collector.points {
		if len(loop) > 0 && loop[len(loop)-1].DistanceTo(p) < geom.Tolerance {
			continue
		}
		loop = append(loop, p)
	}
	for len(loop) > 1 && loop[0].DistanceTo(loop[len(loop)-1]) < StitchTolerance {
		loop = loop[:len(loop)-1]
	}
	return loop
}

func center(loops []StitchedLoop) []StitchedLoop {
	bounds := geom.EmptyBounds()
	for _, sl := range loops {
		bounds = bounds.Union(sl.Loop.Bounds())
	}
	if bounds.IsEmpty() {
		return loops
	}
	c := bounds.Center()
	offset := geom.Point{X: -c.X, Y: -c.Y}
	for i := range loops {
		loops[i].Loop = loops[i].Loop.Translate(offset)
	}
	return loops
}
