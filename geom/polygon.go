package geom

// Polygon is a classified solid outline plus zero or more hole loops. By
// convention Outer winds counterclockwise (signed area >= 0) and every hole
// winds clockwise. Holes are expected to lie inside Outer and not overlap
// each other; neither is actively verified, matching how real-world exchange
// drawings are trusted.
//
// Polygons are immutable value objects: every edit produces a new Polygon.
type Polygon struct {
	Outer Loop
	Holes []Loop
}

// Area is the solid area: outer minus holes. Hole loops wind clockwise, so
// their signed areas are negative and simply sum in.
func (p Polygon) Area() float64 {
	area := p.Outer.SignedArea()
	for _, h := range p.Holes {
		area += h.SignedArea()
	}
	return area
}

func (p Polygon) Bounds() Bounds {
	return p.Outer.Bounds()
}

// ContainsPoint is true when the point is inside the outer loop and outside
// every hole.
func (p Polygon) ContainsPoint(pt Point) bool {
	if !p.Outer.ContainsPoint(pt) {
		return false
	}
	for _, h := range p.Holes {
		if h.ContainsPoint(pt) {
			return false
		}
	}
	return true
}

func (p Polygon) Translate(offset Point) Polygon {
	out := Polygon{Outer: p.Outer.Translate(offset)}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, h.Translate(offset))
	}
	return out
}

// Normalized returns a copy with the conventional winding enforced: outer
// counterclockwise, holes clockwise.
func (p Polygon) Normalized() Polygon {
	out := Polygon{Outer: p.Outer}
	if out.Outer.IsClockwise() {
		out.Outer = out.Outer.Reverse()
	}
	for _, h := range p.Holes {
		if !h.IsClockwise() {
			h = h.Reverse()
		}
		out.Holes = append(out.Holes, h)
	}
	return out
}

// Flatten returns the outer loop followed by each hole as plain point
// sequences. This is the derived view the 2D preview layer draws; it carries
// no extra information.
func (p Polygon) Flatten() []Loop {
	out := make([]Loop, 0, 1+len(p.Holes))
	out = append(out, p.Outer)
	out = append(out, p.Holes...)
	return out
}
