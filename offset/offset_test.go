package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/vectile/geom"
)

func square(min, max float64) geom.Loop {
	return geom.Loop{{X: min, Y: min}, {X: max, Y: min}, {X: max, Y: max}, {X: min, Y: max}}
}

func TestOffsetGrow(t *testing.T) {
	result := Polygon(geom.Polygon{Outer: square(-10, 10)}, 2)
	assert.Len(t, result, 1)
	// A mitered square offset stays square: 24×24.
	assert.InDelta(t, 576.0, result[0].Area(), 1.0)
	b := result[0].Bounds()
	assert.InDelta(t, -12.0, b.MinX, 0.01)
	assert.InDelta(t, 12.0, b.MaxX, 0.01)
}

func TestOffsetShrink(t *testing.T) {
	// Shrinking the 20×20 square by 5 leaves a 10×10 square.
	result := Polygon(geom.Polygon{Outer: square(-10, 10)}, -5)
	assert.Len(t, result, 1)
	assert.InDelta(t, 100.0, result[0].Area(), 1.0)
}

func TestOffsetShrinkToNothing(t *testing.T) {
	// Shrinking past the half-width is a valid empty result, not an error.
	result := Polygon(geom.Polygon{Outer: square(-10, 10)}, -15)
	assert.Empty(t, result)
}

func TestOffsetZero(t *testing.T) {
	original := geom.Polygon{Outer: square(-10, 10)}
	result := Polygon(original, 0)
	assert.Len(t, result, 1)
	assert.InDelta(t, original.Area(), result[0].Area(), 0.01)
}

func TestOffsetRoundTrip(t *testing.T) {
	// Offsetting by +d then −d restores the area within a small epsilon
	// (mitered corners are exact on a rectangle).
	original := geom.Polygon{Outer: square(-10, 10)}
	grown := Polygon(original, 3)
	assert.Len(t, grown, 1)
	back := Polygon(grown[0], -3)
	assert.Len(t, back, 1)
	assert.InDelta(t, original.Area(), back[0].Area(), 0.5)
}

func TestOffsetMonotonicity(t *testing.T) {
	original := geom.Polygon{Outer: square(-10, 10)}
	prev := 0.0
	for _, d := range []float64{0, 1, 2, 5} {
		result := Polygon(original, d)
		assert.Len(t, result, 1)
		area := result[0].Area()
		assert.GreaterOrEqual(t, area+1e-6, prev)
		prev = area
	}
}

func TestOffsetPreservesHole(t *testing.T) {
	p := geom.Polygon{
		Outer: square(-10, 10),
		Holes: []geom.Loop{square(-5, 5).Reverse()},
	}
	grown := Polygon(p, 1)
	assert.Len(t, grown, 1)
	assert.Len(t, grown[0].Holes, 1)
	// The solid grows on both boundaries: outer expands to 22×22, the hole
	// shrinks to 8×8.
	assert.InDelta(t, 22*22-8*8, grown[0].Area(), 1.0)
	// Orientation convention survives reclassification.
	assert.False(t, grown[0].Outer.IsClockwise())
	assert.True(t, grown[0].Holes[0].IsClockwise())
}

func TestOffsetErasesHole(t *testing.T) {
	// Growing by more than the hole's half-width swallows the hole.
	p := geom.Polygon{
		Outer: square(-10, 10),
		Holes: []geom.Loop{square(-2, 2).Reverse()},
	}
	grown := Polygon(p, 3)
	assert.Len(t, grown, 1)
	assert.Empty(t, grown[0].Holes)
}

func TestOffsetSplitsPolygon(t *testing.T) {
	// A dumbbell: two fat ends joined by a thin neck. Shrinking more than
	// the neck's half-width splits it into two polygons.
	dumbbell := geom.Polygon{Outer: geom.Loop{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 16, Y: 4},
		{X: 16, Y: 0}, {X: 26, Y: 0}, {X: 26, Y: 10}, {X: 16, Y: 10},
		{X: 16, Y: 6}, {X: 10, Y: 6}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	result := Polygon(dumbbell, -1.5)
	assert.Len(t, result, 2)
	total := 0.0
	for _, p := range result {
		total += p.Area()
	}
	assert.InDelta(t, 2*7*7, total, 1.0)
}

func TestOffsetDegenerateInput(t *testing.T) {
	// A polygon below the noise floor offsets to nothing rather than
	// erroring.
	sliver := geom.Polygon{Outer: geom.Loop{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1e-9}}}
	assert.Empty(t, Polygon(sliver, -1))
}
