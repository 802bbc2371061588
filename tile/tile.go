// Package tile computes where repeated pattern instances go across a bounded
// region: a list of position+rotation placements under a chosen distribution
// and rotation policy, optionally constrained to an outline polygon.
//
// Placements are cheap, recomputed on every parameter change, and never
// retained; generation is a pure function of its inputs (including the seed,
// so random modes are reproducible).
package tile

import "github.com/osuushi/vectile/geom"

// Footprint is the axis-aligned bounding size of one pattern instance after
// scaling. It exists purely for spatial layout math, never for rendering.
type Footprint struct {
	Width, Height float64
}

// Region is the area to fill: a bounding box, optionally with an outline
// polygon used for containment or clipping decisions.
type Region struct {
	Bounds  geom.Bounds
	Outline *geom.Polygon
}

// Placement positions one pattern instance. Rotation is radians.
type Placement struct {
	Position geom.Point
	Rotation float64
}

type Distribution int

const (
	Grid Distribution = iota
	// Brick shifts alternating rows by half the horizontal period.
	Brick
	// Hex packs rows at the triangular close-packing pitch.
	Hex
	// Radial places instances along concentric rings around the region
	// center.
	Radial
	// Wave perturbs positions along a sinusoidal path.
	Wave
	// Zigzag perturbs positions along a triangle wave.
	Zigzag
	// WarpedGrid perturbs a regular grid by a smooth, bounded,
	// deterministic-per-position distortion.
	WarpedGrid
	// Random scatters positions subject to a minimum-separation constraint.
	Random
)

type RotationPolicy int

const (
	RotateNone RotationPolicy = iota
	// RotateAlternate toggles between two fixed angles by grid parity.
	RotateAlternate
	// RotateRandom draws an angle per instance from the seeded generator.
	RotateRandom
	// RotateAligned points each instance tangentially around the region
	// center, so radial layouts "point outward".
	RotateAligned
)

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Options bundles the layout parameters. The zero value is a plain grid with
// no spacing, no margin, strict containment, and no rotation.
type Options struct {
	Distribution Distribution
	Rotation     RotationPolicy

	// Spacing is the gap between adjacent footprints; Margin insets the
	// usable region on all sides before any candidate generation.
	Spacing float64
	Margin  float64

	// Clip keeps instances that partially overlap the outline (they get
	// trimmed by a downstream boolean step). When false, instances must be
	// fully contained in the outline.
	Clip bool

	// Seed drives the random distribution and random rotation. Same inputs
	// and seed, same output. Zero is an ordinary seed, not "unseeded".
	Seed int64

	// AlternateAngles are the two angles RotateAlternate toggles between.
	AlternateAngles [2]float64

	// Wave/Zigzag tuning. Zero amplitude defaults to half the footprint's
	// cross dimension; zero wavelength defaults to four pitches.
	WaveDirection Direction
	WaveAmplitude float64
	WaveLength    float64
}
