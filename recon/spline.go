package recon

import "github.com/osuushi/vectile/geom"

// samplesPerSpan is the fixed flattening resolution for splines. Twenty
// samples per knot span is enough for visual and manufacturing fidelity at
// millimeter scale.
const samplesPerSpan = 20

// sampleSpline evaluates a B-spline at its own degree via de Boor's
// algorithm, sampling every non-empty knot span. Returns nil when the knot
// vector doesn't describe a valid curve, so the caller can fall back.
func sampleSpline(degree int, knots []float64, controls []geom.Point) []geom.Point {
	if degree < 1 || len(controls) <= degree {
		return nil
	}
	if len(knots) != len(controls)+degree+1 {
		return nil
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil
		}
	}

	var points []geom.Point
	// The curve is defined on spans [knots[degree], knots[len-degree-1]].
	for span := degree; span < len(knots)-degree-1; span++ {
		if knots[span+1] <= knots[span] {
			continue // zero-width span (repeated knot)
		}
		for i := 0; i < samplesPerSpan; i++ {
			u := knots[span] + (knots[span+1]-knots[span])*float64(i)/float64(samplesPerSpan)
			points = append(points, deBoor(span, u, degree, knots, controls))
		}
	}
	if len(points) == 0 {
		return nil
	}
	// Close out with the exact curve endpoint.
	last := len(knots) - degree - 1
	points = append(points, deBoor(lastSpan(degree, knots), knots[last], degree, knots, controls))
	return points
}

// lastSpan finds the rightmost non-empty span, where the curve's endpoint
// evaluates.
func lastSpan(degree int, knots []float64) int {
	for span := len(knots) - degree - 2; span > degree; span-- {
		if knots[span+1] > knots[span] {
			return span
		}
	}
	return degree
}

// deBoor evaluates the curve at parameter u lying in span k.
func deBoor(k int, u float64, degree int, knots []float64, controls []geom.Point) geom.Point {
	d := make([]geom.Point, degree+1)
	copy(d, controls[k-degree:k+1])
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			i := j + k - degree
			denom := knots[j+1+k-r] - knots[i]
			alpha := 0.0
			if denom != 0 {
				alpha = (u - knots[i]) / denom
			}
			d[j] = d[j-1].Scale(1 - alpha).Add(d[j].Scale(alpha))
		}
	}
	return d[degree]
}
