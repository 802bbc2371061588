// Package svg extracts polygons from SVG markup, optionally keeping each
// element's fill color. The "shape or shape-plus-color" duality is resolved
// here, once, at the boundary: callers either get hole-aware classified
// polygons, or styled per-element polygons, never an ad hoc mix.
//
// This is not a full SVG engine. It reads polygon, polyline, rect and circle
// elements; path data and transforms belong to the upstream import UI.
package svg

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/vectile/geom"
	"github.com/osuushi/vectile/recon"
)

// StyledPolygon pairs a polygon with its source element's fill color. A nil
// color means the element had no usable fill.
type StyledPolygon struct {
	Polygon geom.Polygon
	Color   *color.RGBA
}

const circleSamples = 64

// Parse reads SVG markup. With keepColors, every supported element becomes
// its own simple polygon carrying that element's fill. Without it, colors
// are discarded and all loops are classified together into hole-aware
// polygons, the same way DXF loops are.
func Parse(r io.Reader, keepColors bool) ([]StyledPolygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "svg: parse failed")
	}

	var styled []StyledPolygon
	walk(root, func(el *svgparser.Element) {
		loop := elementLoop(el)
		if len(loop) < 3 {
			return
		}
		if loop.IsClockwise() {
			loop = loop.Reverse()
		}
		styled = append(styled, StyledPolygon{
			Polygon: geom.Polygon{Outer: loop},
			Color:   fillColor(el),
		})
	})

	if keepColors {
		return styled, nil
	}
	loops := make([]geom.Loop, len(styled))
	for i, sp := range styled {
		loops[i] = sp.Polygon.Outer
	}
	classified := recon.Classify(loops)
	out := make([]StyledPolygon, len(classified))
	for i, p := range classified {
		out[i] = StyledPolygon{Polygon: p}
	}
	return out, nil
}

func walk(el *svgparser.Element, visit func(*svgparser.Element)) {
	visit(el)
	for _, child := range el.Children {
		walk(child, visit)
	}
}

func elementLoop(el *svgparser.Element) geom.Loop {
	switch el.Name {
	case "polygon", "polyline":
		return parsePoints(el.Attributes["points"])
	case "rect":
		x := atof(el.Attributes["x"])
		y := atof(el.Attributes["y"])
		w := atof(el.Attributes["width"])
		h := atof(el.Attributes["height"])
		if w <= 0 || h <= 0 {
			return nil
		}
		return geom.Loop{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	case "circle":
		cx := atof(el.Attributes["cx"])
		cy := atof(el.Attributes["cy"])
		r := atof(el.Attributes["r"])
		if r <= 0 {
			return nil
		}
		loop := make(geom.Loop, 0, circleSamples)
		for i := 0; i < circleSamples; i++ {
			t := 2 * math.Pi * float64(i) / circleSamples
			loop = append(loop, geom.Point{X: cx + r*math.Cos(t), Y: cy + r*math.Sin(t)})
		}
		return loop
	}
	return nil
}

func parsePoints(attr string) geom.Loop {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields)%2 != 0 {
		return nil
	}
	loop := make(geom.Loop, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		loop = append(loop, geom.Point{X: atof(fields[i]), Y: atof(fields[i+1])})
	}
	return loop
}

// fillColor pulls the fill out of the fill attribute or the style string
// ("fill:#rrggbb;stroke:none").
func fillColor(el *svgparser.Element) *color.RGBA {
	fill := el.Attributes["fill"]
	if fill == "" {
		for _, decl := range strings.Split(el.Attributes["style"], ";") {
			kv := strings.SplitN(strings.TrimSpace(decl), ":", 2)
			if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "fill") {
				fill = strings.TrimSpace(kv[1])
				break
			}
		}
	}
	return parseHexColor(fill)
}

func parseHexColor(s string) *color.RGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return nil
	}
	s = strings.TrimPrefix(s, "#")
	// #rgb shorthand expands each nibble.
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}
	return &color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
