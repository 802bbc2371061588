package tile

import (
	"math"
	"math/rand"

	"github.com/osuushi/vectile/geom"
)

// Boundary comparisons use a small slack so that an instance landing exactly
// on the region edge counts as inside, whatever floating error the pitch
// arithmetic accumulated.
const boundaryEps = 1e-9

// candidate is a tentative position plus its lattice indices (used for
// parity-based rotation).
type candidate struct {
	pos    geom.Point
	ix, iy int
}

// Generate produces the ordered placement list for one layout. Candidates
// whose footprint would leave the margin-inset bounding box are rejected
// outright; the outline polygon then applies strict containment or
// clip-mode filtering per Options.Clip.
func Generate(region Region, fp Footprint, opts Options) []Placement {
	if fp.Width <= 0 || fp.Height <= 0 {
		return nil
	}
	bounds := region.Bounds.Inset(opts.Margin)
	if bounds.IsEmpty() || bounds.Width() < fp.Width || bounds.Height() < fp.Height {
		return nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var candidates []candidate
	switch opts.Distribution {
	case Grid:
		candidates = latticeCandidates(bounds, fp, opts, 0, 1, nil)
	case Brick:
		candidates = latticeCandidates(bounds, fp, opts, 0.5, 1, nil)
	case Hex:
		candidates = latticeCandidates(bounds, fp, opts, 0.5, math.Sqrt(3)/2, nil)
	case Radial:
		candidates = radialCandidates(bounds, fp, opts)
	case Wave:
		candidates = latticeCandidates(bounds, fp, opts, 0, 1, sineWarp(fp, opts))
	case Zigzag:
		candidates = latticeCandidates(bounds, fp, opts, 0, 1, triangleWarp(fp, opts))
	case WarpedGrid:
		candidates = latticeCandidates(bounds, fp, opts, 0, 1, smoothWarp(fp, opts))
	case Random:
		candidates = randomCandidates(bounds, fp, opts, rng)
	}

	center := bounds.Center()
	var out []Placement
	for _, c := range candidates {
		if !fits(bounds, region.Outline, c.pos, fp, opts.Clip) {
			continue
		}
		out = append(out, Placement{
			Position: c.pos,
			Rotation: rotationFor(c, center, opts, rng),
		})
	}
	return out
}

// latticeCandidates generates row-by-row lattice positions. rowShift is the
// fraction of the horizontal pitch odd rows shift by (0.5 for brick and
// hex), rowPitchFactor compresses the vertical pitch (√3/2 for hex close
// packing). warp, when non-nil, perturbs each position after lattice
// placement.
func latticeCandidates(bounds geom.Bounds, fp Footprint, opts Options, rowShift, rowPitchFactor float64, warp func(geom.Point) geom.Point) []candidate {
	pitchX := fp.Width + opts.Spacing
	pitchY := (fp.Height + opts.Spacing) * rowPitchFactor
	var out []candidate
	for iy := 0; ; iy++ {
		y := bounds.MinY + fp.Height/2 + float64(iy)*pitchY
		if y+fp.Height/2 > bounds.MaxY+boundaryEps {
			break
		}
		shift := 0.0
		if iy%2 == 1 {
			shift = rowShift * pitchX
		}
		for ix := 0; ; ix++ {
			x := bounds.MinX + fp.Width/2 + shift + float64(ix)*pitchX
			if x+fp.Width/2 > bounds.MaxX+boundaryEps {
				break
			}
			pos := geom.Point{X: x, Y: y}
			if warp != nil {
				pos = warp(pos)
			}
			out = append(out, candidate{pos: pos, ix: ix, iy: iy})
		}
	}
	return out
}

func radialCandidates(bounds geom.Bounds, fp Footprint, opts Options) []candidate {
	center := bounds.Center()
	ringStep := math.Max(fp.Width, fp.Height) + opts.Spacing
	alongPitch := fp.Width + opts.Spacing
	maxRadius := math.Hypot(bounds.Width(), bounds.Height()) / 2

	out := []candidate{{pos: center}}
	for ring := 1; ; ring++ {
		radius := float64(ring) * ringStep
		if radius > maxRadius {
			break
		}
		count := int(2 * math.Pi * radius / alongPitch)
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			out = append(out, candidate{
				pos: geom.Point{
					X: center.X + radius*math.Cos(angle),
					Y: center.Y + radius*math.Sin(angle),
				},
				ix: i,
				iy: ring,
			})
		}
	}
	return out
}

func randomCandidates(bounds geom.Bounds, fp Footprint, opts Options, rng *rand.Rand) []candidate {
	pitchX := fp.Width + opts.Spacing
	pitchY := fp.Height + opts.Spacing
	target := int(bounds.Width() * bounds.Height() / (pitchX * pitchY))
	if target < 1 {
		target = 1
	}
	minSeparation := math.Max(fp.Width, fp.Height) + opts.Spacing

	var out []candidate
	// Dart throwing: bounded attempts so a region too tight for the
	// separation constraint terminates with fewer instances, not never.
	for attempts := 0; attempts < target*30 && len(out) < target; attempts++ {
		pos := geom.Point{
			X: bounds.MinX + fp.Width/2 + rng.Float64()*(bounds.Width()-fp.Width),
			Y: bounds.MinY + fp.Height/2 + rng.Float64()*(bounds.Height()-fp.Height),
		}
		tooClose := false
		for _, existing := range out {
			if existing.pos.DistanceTo(pos) < minSeparation {
				tooClose = true
				break
			}
		}
		if !tooClose {
			out = append(out, candidate{pos: pos, ix: len(out)})
		}
	}
	return out
}

// Wave parameters default from the footprint pitch: half the cross dimension
// of amplitude, four pitches of wavelength.
func waveParams(fp Footprint, opts Options) (amplitude, wavelength float64, vertical bool) {
	vertical = opts.WaveDirection == Vertical
	amplitude = opts.WaveAmplitude
	wavelength = opts.WaveLength
	if amplitude == 0 {
		if vertical {
			amplitude = fp.Width / 2
		} else {
			amplitude = fp.Height / 2
		}
	}
	if wavelength == 0 {
		if vertical {
			wavelength = 4 * (fp.Height + opts.Spacing)
		} else {
			wavelength = 4 * (fp.Width + opts.Spacing)
		}
	}
	return amplitude, wavelength, vertical
}

func sineWarp(fp Footprint, opts Options) func(geom.Point) geom.Point {
	amplitude, wavelength, vertical := waveParams(fp, opts)
	return func(p geom.Point) geom.Point {
		if vertical {
			p.X += amplitude * math.Sin(2*math.Pi*p.Y/wavelength)
		} else {
			p.Y += amplitude * math.Sin(2*math.Pi*p.X/wavelength)
		}
		return p
	}
}

func triangleWarp(fp Footprint, opts Options) func(geom.Point) geom.Point {
	amplitude, wavelength, vertical := waveParams(fp, opts)
	tri := func(t float64) float64 {
		phase := t - math.Floor(t)
		return 4*math.Abs(phase-0.5) - 1
	}
	return func(p geom.Point) geom.Point {
		if vertical {
			p.X += amplitude * tri(p.Y/wavelength)
		} else {
			p.Y += amplitude * tri(p.X/wavelength)
		}
		return p
	}
}

// smoothWarp displaces each grid position by bounded sinusoids of the
// transverse coordinate. The displacement is a pure function of position, so
// the same layout always warps the same way.
func smoothWarp(fp Footprint, opts Options) func(geom.Point) geom.Point {
	pitch := math.Min(fp.Width, fp.Height) + opts.Spacing
	jitter := pitch / 4
	frequency := 2 * math.Pi / (4 * pitch)
	return func(p geom.Point) geom.Point {
		return geom.Point{
			X: p.X + jitter*math.Sin(p.Y*frequency),
			Y: p.Y + jitter*math.Sin(p.X*frequency),
		}
	}
}

// fits applies the two rejection stages: the footprint must sit inside the
// region's (inset) bounding box at zero rotation, and must satisfy the
// outline containment rule when an outline is present.
func fits(bounds geom.Bounds, outline *geom.Polygon, pos geom.Point, fp Footprint, clip bool) bool {
	halfW, halfH := fp.Width/2, fp.Height/2
	if pos.X-halfW < bounds.MinX-boundaryEps || pos.X+halfW > bounds.MaxX+boundaryEps ||
		pos.Y-halfH < bounds.MinY-boundaryEps || pos.Y+halfH > bounds.MaxY+boundaryEps {
		return false
	}
	if outline == nil {
		return true
	}

	probes := []geom.Point{
		{X: pos.X - halfW, Y: pos.Y - halfH},
		{X: pos.X + halfW, Y: pos.Y - halfH},
		{X: pos.X + halfW, Y: pos.Y + halfH},
		{X: pos.X - halfW, Y: pos.Y + halfH},
		pos,
	}
	inside := 0
	for _, probe := range probes {
		if outline.ContainsPoint(probe) {
			inside++
		}
	}
	if !clip {
		return inside == len(probes)
	}
	if inside > 0 {
		return true
	}
	// Clip mode keeps anything not fully outside. The corners can all miss a
	// thin outline feature poking into the footprint, so also check whether
	// the outline pierces the footprint rectangle.
	footBounds := geom.Bounds{
		MinX: pos.X - halfW, MinY: pos.Y - halfH,
		MaxX: pos.X + halfW, MaxY: pos.Y + halfH,
	}
	for _, vertex := range outline.Outer {
		if footBounds.Contains(vertex) {
			return true
		}
	}
	return false
}

func rotationFor(c candidate, center geom.Point, opts Options, rng *rand.Rand) float64 {
	switch opts.Rotation {
	case RotateAlternate:
		if (c.ix+c.iy)%2 == 0 {
			return opts.AlternateAngles[0]
		}
		return opts.AlternateAngles[1]
	case RotateRandom:
		return rng.Float64() * 2 * math.Pi
	case RotateAligned:
		return math.Atan2(c.pos.Y-center.Y, c.pos.X-center.X) + math.Pi/2
	default:
		return 0
	}
}
