package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/vectile/geom"
)

func squareLoop(min, max float64) geom.Loop {
	return geom.Loop{{X: min, Y: min}, {X: max, Y: min}, {X: max, Y: max}, {X: min, Y: max}}
}

func TestClassifySingleSquare(t *testing.T) {
	polygons := Classify([]geom.Loop{squareLoop(0, 10)})
	assert.Len(t, polygons, 1)
	assert.Empty(t, polygons[0].Holes)
	assert.InDelta(t, 100.0, polygons[0].Area(), 1e-6)
}

func TestClassifySquareWithHole(t *testing.T) {
	// A 20×20 square containing a concentric 10×10 square. Winding direction
	// of the input is irrelevant; classification decides solid vs hole.
	for _, reverseInner := range []bool{false, true} {
		inner := squareLoop(5, 15)
		if reverseInner {
			inner = inner.Reverse()
		}
		polygons := Classify([]geom.Loop{inner, squareLoop(0, 20)})
		assert.Len(t, polygons, 1)
		assert.Len(t, polygons[0].Holes, 1)
		assert.InDelta(t, 300.0, polygons[0].Area(), 1e-6)
	}
}

func TestClassifyOrientationInvariant(t *testing.T) {
	polygons := Classify([]geom.Loop{
		squareLoop(0, 20).Reverse(),
		squareLoop(5, 15),
	})
	for _, p := range polygons {
		assert.GreaterOrEqual(t, p.Outer.SignedArea(), 0.0)
		for _, h := range p.Holes {
			assert.LessOrEqual(t, h.SignedArea(), 0.0)
		}
	}
}

func TestClassifyIslandInHole(t *testing.T) {
	// Concentric rings: solid, hole, then an island inside the hole. The
	// island is promoted to its own polygon, not attached as anyone's hole.
	polygons := Classify([]geom.Loop{
		squareLoop(0, 30),
		squareLoop(5, 25),
		squareLoop(10, 20),
	})
	assert.Len(t, polygons, 2)
	assert.Len(t, polygons[0].Holes, 1)
	assert.Empty(t, polygons[1].Holes)
	assert.InDelta(t, 100.0, polygons[1].Area(), 1e-6)
}

func TestClassifyDeepNesting(t *testing.T) {
	// Four levels: solid / hole / solid / hole.
	polygons := Classify([]geom.Loop{
		squareLoop(0, 40),
		squareLoop(5, 35),
		squareLoop(10, 30),
		squareLoop(15, 25),
	})
	assert.Len(t, polygons, 2)
	assert.Len(t, polygons[0].Holes, 1)
	assert.Len(t, polygons[1].Holes, 1)
}

func TestClassifySiblings(t *testing.T) {
	// Two disjoint squares are two standalone polygons.
	polygons := Classify([]geom.Loop{
		squareLoop(0, 10),
		squareLoop(20, 30),
	})
	assert.Len(t, polygons, 2)
}

func TestClassifyNoiseFiltered(t *testing.T) {
	sliver := geom.Loop{{X: 0, Y: 0}, {X: 1e-3, Y: 0}, {X: 1e-3, Y: 1e-3}}
	polygons := Classify([]geom.Loop{squareLoop(0, 10), sliver})
	assert.Len(t, polygons, 1)
	assert.Empty(t, polygons[0].Holes)
}

func TestClassifyNestingCorrectness(t *testing.T) {
	// Every hole sample point lies inside its polygon's outer loop.
	polygons := Classify([]geom.Loop{
		squareLoop(0, 20),
		squareLoop(2, 8),
		squareLoop(12, 18),
	})
	assert.Len(t, polygons, 1)
	assert.Len(t, polygons[0].Holes, 2)
	for _, hole := range polygons[0].Holes {
		for _, p := range hole.SamplePoints(4) {
			assert.True(t, polygons[0].Outer.ContainsPoint(p))
		}
	}
}
