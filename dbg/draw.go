package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/vectile/geom"
	"github.com/osuushi/vectile/tile"
)

// Terminal previews for debugging: polygons render with even-odd fill so
// holes read as holes, placements render as rotated footprint rectangles.

const drawPadding = 20

// DrawPolygons renders the polygon set to a PNG and cats it to the terminal.
func DrawPolygons(polygons []geom.Polygon, scale float64) {
	bounds := geom.EmptyBounds()
	for _, poly := range polygons {
		bounds = bounds.Union(poly.Bounds())
	}
	c := newContext(bounds, scale)
	if c == nil {
		return
	}

	for _, poly := range polygons {
		for _, loop := range poly.Flatten() {
			tracePath(c, loop)
		}
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	catContext(c)
}

// DrawPlacements renders a layout: the optional outline plus one rectangle
// per placement.
func DrawPlacements(region tile.Region, fp tile.Footprint, placements []tile.Placement, scale float64) {
	c := newContext(region.Bounds, scale)
	if c == nil {
		return
	}

	if region.Outline != nil {
		for _, loop := range region.Outline.Flatten() {
			tracePath(c, loop)
		}
		c.SetRGB(0.3, 0.3, 0.3)
		c.Fill()
	}

	c.SetRGB(1, 0.6, 0)
	for _, placement := range placements {
		tracePath(c, footprintCorners(fp, placement))
		c.Stroke()
	}

	catContext(c)
}

func newContext(bounds geom.Bounds, scale float64) *gg.Context {
	if bounds.IsEmpty() {
		return nil
	}
	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left, then pad, scale,
	// and translate to the content's min corner.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.MinX, -bounds.MinY)
	c.SetLineWidth(2)
	return c
}

func tracePath(c *gg.Context, loop geom.Loop) {
	if len(loop) == 0 {
		return
	}
	c.MoveTo(loop[0].X, loop[0].Y)
	for _, p := range loop[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func footprintCorners(fp tile.Footprint, placement tile.Placement) geom.Loop {
	halfW, halfH := fp.Width/2, fp.Height/2
	cos := math.Cos(placement.Rotation)
	sin := math.Sin(placement.Rotation)
	corners := []geom.Point{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}
	loop := make(geom.Loop, len(corners))
	for i, corner := range corners {
		loop[i] = geom.Point{
			X: placement.Position.X + corner.X*cos - corner.Y*sin,
			Y: placement.Position.Y + corner.X*sin + corner.Y*cos,
		}
	}
	return loop
}

func catContext(c *gg.Context) {
	c.SavePNG("/tmp/vectile_debug.png")
	imgcat.CatFile("/tmp/vectile_debug.png", os.Stdout)
}
