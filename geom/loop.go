package geom

// Loop is an ordered, closed point sequence. The last point implicitly
// connects back to the first; consecutive points are always distinct. A loop
// carries no solid/hole meaning on its own — that is assigned by
// classification (see the recon package).
type Loop []Point

// SignedArea is the shoelace sum: positive for counterclockwise winding,
// negative for clockwise.
func (l Loop) SignedArea() float64 {
	if len(l) < 3 {
		return 0
	}
	area := 0.0
	for i, p := range l {
		q := l[CircularIndex(i+1, len(l))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (l Loop) IsClockwise() bool {
	return l.SignedArea() < 0
}

func (l Loop) Reverse() Loop {
	out := make(Loop, 0, len(l))
	for i := len(l) - 1; i >= 0; i-- {
		out = append(out, l[i])
	}
	return out
}

func (l Loop) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range l {
		b = b.Extend(p)
	}
	return b
}

func (l Loop) Translate(offset Point) Loop {
	out := make(Loop, len(l))
	for i, p := range l {
		out[i] = p.Add(offset)
	}
	return out
}

// ContainsPoint is even-odd rule point-in-polygon. Points exactly on the
// boundary give an arbitrary answer; callers that care (the classifier) probe
// several points and take a majority.
func (l Loop) ContainsPoint(p Point) bool {
	return l.crossingCount(p)%2 == 1
}

// Crossing count helper for the even-odd rule. A crossing is an edge that
// straddles p's Y value and intersects the rightward horizontal ray from p.
func (l Loop) crossingCount(p Point) int {
	count := 0
	for i, vertex := range l {
		next := l[CircularIndex(i+1, len(l))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		t := (p.Y - vertex.Y) / (next.Y - vertex.Y)
		if vertex.X+t*(next.X-vertex.X) > p.X {
			count++
		}
	}
	return count
}

// SamplePoints returns up to n points spaced evenly along the loop's
// vertices. Used for containment voting, where a single probe can land on a
// parent's own boundary and lie.
func (l Loop) SamplePoints(n int) []Point {
	if len(l) == 0 {
		return nil
	}
	if n > len(l) {
		n = len(l)
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, l[i*len(l)/n])
	}
	return out
}
