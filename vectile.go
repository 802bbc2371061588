// A vector-outline reconstruction and pattern tiling engine.
//
// This package turns raw CAD exchange entities into closed, hole-aware 2D
// polygons, grows or shrinks polygons by a fixed distance, and computes
// where repeated pattern instances land across a bounded region. It renders
// nothing and persists nothing: geometry in, polygons and placement lists
// out. Everything is millimeters.
package vectile

import (
	"github.com/osuushi/vectile/dxf"
	"github.com/osuushi/vectile/geom"
	"github.com/osuushi/vectile/internal"
	"github.com/osuushi/vectile/offset"
	"github.com/osuushi/vectile/recon"
	"github.com/osuushi/vectile/tile"
)

type Point = geom.Point
type Loop = geom.Loop
type Polygon = geom.Polygon
type Footprint = tile.Footprint
type Region = tile.Region
type Placement = tile.Placement

// ReconstructDXF parses ASCII DXF text and reconstructs its entities into
// classified polygons, centered at the origin and scaled to millimeters.
//
// A malformed document yields an empty polygon set, not an error; surface
// that as "no shapes found". The error return only fires on contract
// violations (a binary DXF buffer), converted from the engine's internal
// panic.
func ReconstructDXF(data []byte) (result []Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandleContractPanic(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return recon.Reconstruct(dxf.Parse(data)), nil
}

// Offset grows (positive) or shrinks (negative) a polygon by a perpendicular
// distance with mitered corners. The result can be empty, or contain more
// polygons than went in; both are valid outcomes of offsetting.
func Offset(p Polygon, distance float64) []Polygon {
	return offset.Polygon(p, distance)
}

// Placements generates the instance layout for a pattern across a region.
// See the tile package for distributions, rotation policies and options.
func Placements(region Region, fp Footprint, opts tile.Options) []Placement {
	return tile.Generate(region, fp, opts)
}
