package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(min, max float64) Loop {
	return Loop{{min, min}, {max, min}, {max, max}, {min, max}}
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestSignedArea(t *testing.T) {
	ccw := square(0, 10)
	assert.InDelta(t, 100.0, ccw.SignedArea(), Tolerance)
	assert.False(t, ccw.IsClockwise())

	cw := ccw.Reverse()
	assert.InDelta(t, -100.0, cw.SignedArea(), Tolerance)
	assert.True(t, cw.IsClockwise())

	assert.InDelta(t, 0.0, Loop{{0, 0}, {1, 1}}.SignedArea(), Tolerance)
}

func TestContainsPoint(t *testing.T) {
	loop := square(0, 10)
	assert.True(t, loop.ContainsPoint(Point{5, 5}))
	assert.True(t, loop.ContainsPoint(Point{0.001, 9.999}))
	assert.False(t, loop.ContainsPoint(Point{-1, 5}))
	assert.False(t, loop.ContainsPoint(Point{5, 11}))

	// Winding direction must not matter for the even-odd rule.
	assert.True(t, loop.Reverse().ContainsPoint(Point{5, 5}))
}

func TestContainsPointConcave(t *testing.T) {
	// A U shape: the notch between the prongs is outside.
	u := Loop{{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10}}
	assert.True(t, u.ContainsPoint(Point{1.5, 5}))
	assert.True(t, u.ContainsPoint(Point{8.5, 5}))
	assert.False(t, u.ContainsPoint(Point{5, 5}))
}

func TestPolygonContainsPoint(t *testing.T) {
	p := Polygon{
		Outer: square(0, 20),
		Holes: []Loop{square(5, 15).Reverse()},
	}
	assert.True(t, p.ContainsPoint(Point{2, 2}))
	assert.False(t, p.ContainsPoint(Point{10, 10})) // inside the hole
	assert.False(t, p.ContainsPoint(Point{25, 25}))
}

func TestPolygonArea(t *testing.T) {
	p := Polygon{
		Outer: square(0, 20),
		Holes: []Loop{square(5, 15).Reverse()},
	}
	assert.InDelta(t, 300.0, p.Area(), Tolerance)
}

func TestNormalized(t *testing.T) {
	p := Polygon{
		Outer: square(0, 20).Reverse(), // wrong winding on purpose
		Holes: []Loop{square(5, 15)},
	}
	n := p.Normalized()
	assert.False(t, n.Outer.IsClockwise())
	assert.True(t, n.Holes[0].IsClockwise())
	// Normalizing must not mutate the original.
	assert.True(t, p.Outer.IsClockwise())
}

func TestBounds(t *testing.T) {
	b := EmptyBounds()
	assert.True(t, b.IsEmpty())
	b = b.Extend(Point{-3, 2})
	b = b.Extend(Point{5, -4})
	assert.False(t, b.IsEmpty())
	assert.InDelta(t, 8.0, b.Width(), Tolerance)
	assert.InDelta(t, 6.0, b.Height(), Tolerance)
	assert.Equal(t, Point{1, -1}, b.Center())

	inset := b.Inset(1)
	assert.InDelta(t, 6.0, inset.Width(), Tolerance)
	assert.True(t, b.Inset(100).IsEmpty())
}

func TestSamplePoints(t *testing.T) {
	loop := square(0, 10)
	assert.Len(t, loop.SamplePoints(2), 2)
	// Asking for more samples than vertices just returns the vertices.
	assert.Len(t, loop.SamplePoints(10), 4)
	assert.Nil(t, Loop{}.SamplePoints(3))
}

func TestFlatten(t *testing.T) {
	p := Polygon{
		Outer: square(0, 20),
		Holes: []Loop{square(5, 15).Reverse()},
	}
	flat := p.Flatten()
	assert.Len(t, flat, 2)
	assert.Equal(t, p.Outer, flat[0])
	assert.Equal(t, p.Holes[0], flat[1])
}
