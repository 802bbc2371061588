// Command vectile imports a DXF drawing, reports what it reconstructed, and
// optionally previews a tile layout over the first polygon's bounds in the
// terminal. It exists for poking at the engine from the shell; the real
// consumers are the extrusion and UI layers.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"math"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/vectile"
	"github.com/osuushi/vectile/dbg"
	"github.com/osuushi/vectile/tile"
)

var (
	dxfPath      = kingpin.Arg("dxf", "DXF file to reconstruct").Required().ExistingFile()
	draw         = kingpin.Flag("draw", "Render previews to the terminal (needs an imgcat-capable terminal)").Bool()
	drawScale    = kingpin.Flag("scale", "Preview pixels per millimeter").Default("4").Float64()
	offsetBy     = kingpin.Flag("offset", "Offset the polygons by this many millimeters").Default("0").Float64()
	tileWidth    = kingpin.Flag("tile", "Tile a footprint of this size (mm) over the first polygon").Default("0").Float64()
	tileSpacing  = kingpin.Flag("spacing", "Spacing between tiles (mm)").Default("0").Float64()
	tileDist     = kingpin.Flag("distribution", "grid, brick, hex, radial, wave, zigzag, warped or random").Default("grid").Enum("grid", "brick", "hex", "radial", "wave", "zigzag", "warped", "random")
	tileSeed     = kingpin.Flag("seed", "Seed for the random distribution and rotation").Default("0").Int64()
	tileClip     = kingpin.Flag("clip", "Keep tiles partially overlapping the outline").Bool()
	tileRotation = kingpin.Flag("rotation", "none, alternate, random or aligned").Default("none").Enum("none", "alternate", "random", "aligned")
)

var distributions = map[string]tile.Distribution{
	"grid":   tile.Grid,
	"brick":  tile.Brick,
	"hex":    tile.Hex,
	"radial": tile.Radial,
	"wave":   tile.Wave,
	"zigzag": tile.Zigzag,
	"warped": tile.WarpedGrid,
	"random": tile.Random,
}

var rotations = map[string]tile.RotationPolicy{
	"none":      tile.RotateNone,
	"alternate": tile.RotateAlternate,
	"random":    tile.RotateRandom,
	"aligned":   tile.RotateAligned,
}

func main() {
	kingpin.Parse()

	data, err := ioutil.ReadFile(*dxfPath)
	if err != nil {
		log.Fatalf("could not read %q: %v", *dxfPath, err)
	}

	polygons, err := vectile.ReconstructDXF(data)
	if err != nil {
		log.Fatalf("reconstruction failed: %v", err)
	}
	if len(polygons) == 0 {
		fmt.Println(aurora.Red("no shapes found"))
		return
	}

	if *offsetBy != 0 {
		var grown []vectile.Polygon
		for _, p := range polygons {
			grown = append(grown, vectile.Offset(p, *offsetBy)...)
		}
		polygons = grown
	}

	fmt.Printf("%s %d polygon(s)\n", aurora.Green("reconstructed"), len(polygons))
	for i, p := range polygons {
		b := p.Bounds()
		fmt.Printf("  #%d: %.1f×%.1f mm, %d hole(s), area %.1f mm²\n",
			i, b.Width(), b.Height(), len(p.Holes), p.Area())
	}
	if *draw {
		dbg.DrawPolygons(polygons, *drawScale)
	}

	if *tileWidth <= 0 {
		return
	}
	outline := polygons[0]
	region := tile.Region{Bounds: outline.Bounds(), Outline: &outline}
	fp := tile.Footprint{Width: *tileWidth, Height: *tileWidth}
	placements := vectile.Placements(region, fp, tile.Options{
		Distribution:    distributions[*tileDist],
		Rotation:        rotations[*tileRotation],
		Spacing:         *tileSpacing,
		Clip:            *tileClip,
		Seed:            *tileSeed,
		AlternateAngles: [2]float64{0, math.Pi / 2},
	})
	fmt.Printf("%s %d placement(s)\n", aurora.Green("generated"), len(placements))
	if *draw {
		dbg.DrawPlacements(region, fp, placements, *drawScale)
	}
}
