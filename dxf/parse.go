package dxf

import (
	"bufio"
	"bytes"
	"log"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/vectile/internal"
)

// binarySentinel opens every binary-format DXF file. Binary DXF is a
// different container entirely; handing it to the ASCII parser is a caller
// bug, not bad user data.
const binarySentinel = "AutoCAD Binary DXF"

// Document is the parsed result: the header's length unit code and the
// entities in file order.
type Document struct {
	Units    int
	Entities []Entity
}

// Scale is the document's millimeters-per-unit factor.
func (d *Document) Scale() float64 {
	return UnitScale(d.Units)
}

// A tag is one group-code/value pair. DXF text is just a flat sequence of
// these: an integer code on one line, its value on the next.
type tag struct {
	code  int
	value string
}

// Parse reads an ASCII DXF document. Malformed content degrades to an empty
// or partial entity list with a diagnostic line; the only panic (recovered
// at the public API) is the binary-DXF contract violation.
func Parse(data []byte) *Document {
	if bytes.HasPrefix(data, []byte(binarySentinel)) {
		internal.Fatalf("dxf: binary DXF buffer passed to the ASCII parser")
	}

	tags := scanTags(data)
	doc := &Document{}
	for i := 0; i < len(tags); i++ {
		if tags[i].code != 0 || tags[i].value != "SECTION" {
			continue
		}
		if i+1 >= len(tags) || tags[i+1].code != 2 {
			continue
		}
		switch tags[i+1].value {
		case "HEADER":
			i = parseHeader(tags, i+2, doc)
		case "ENTITIES":
			i = parseEntities(tags, i+2, doc)
		}
	}
	if len(doc.Entities) == 0 {
		log.Printf("dxf: no supported entities found")
	}
	return doc
}

func scanTags(data []byte) []tag {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var tags []tag
	for scanner.Scan() {
		codeLine := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			break
		}
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			// Desynced code/value lines; skip this pair and resync on the
			// next one that parses.
			continue
		}
		tags = append(tags, tag{code, strings.TrimSpace(scanner.Text())})
	}
	return tags
}

// parseHeader scans for $INSUNITS and returns the index of the section's
// ENDSEC tag.
func parseHeader(tags []tag, i int, doc *Document) int {
	for ; i < len(tags); i++ {
		if tags[i].code == 0 && tags[i].value == "ENDSEC" {
			return i
		}
		if tags[i].code == 9 && tags[i].value == "$INSUNITS" {
			if i+1 < len(tags) && tags[i+1].code == 70 {
				doc.Units = atoiDefault(tags[i+1].value, 0)
			}
		}
	}
	return i
}

func parseEntities(tags []tag, i int, doc *Document) int {
	for i < len(tags) {
		if tags[i].code != 0 {
			i++
			continue
		}
		if tags[i].value == "ENDSEC" {
			return i
		}
		name := tags[i].value
		body, next := collectBody(tags, i+1)
		switch name {
		case "LINE":
			doc.Entities = append(doc.Entities, parseLine(body))
		case "CIRCLE":
			doc.Entities = append(doc.Entities, parseCircle(body))
		case "ARC":
			doc.Entities = append(doc.Entities, parseArc(body))
		case "ELLIPSE":
			doc.Entities = append(doc.Entities, parseEllipse(body))
		case "LWPOLYLINE":
			doc.Entities = append(doc.Entities, parseLWPolyline(body))
		case "POLYLINE":
			var poly Polyline
			poly, next = parsePolyline(body, tags, next)
			doc.Entities = append(doc.Entities, poly)
		case "SPLINE":
			doc.Entities = append(doc.Entities, parseSpline(body))
		default:
			// Unsupported entity kinds (TEXT, DIMENSION, INSERT, ...) are
			// simply not geometry we reconstruct.
		}
		i = next
	}
	return i
}

// collectBody gathers the tags belonging to one entity: everything up to the
// next code 0.
func collectBody(tags []tag, i int) ([]tag, int) {
	start := i
	for i < len(tags) && tags[i].code != 0 {
		i++
	}
	return tags[start:i], i
}

// body accessor helpers. Missing codes yield zero values; DXF omits fields
// freely and zero is the format's own default for all of these.

func bodyFloat(body []tag, code int) float64 {
	for _, t := range body {
		if t.code == code {
			return atofDefault(t.value, 0)
		}
	}
	return 0
}

func bodyFloatDefault(body []tag, code int, def float64) float64 {
	for _, t := range body {
		if t.code == code {
			return atofDefault(t.value, def)
		}
	}
	return def
}

func bodyInt(body []tag, code int) int {
	for _, t := range body {
		if t.code == code {
			return atoiDefault(t.value, 0)
		}
	}
	return 0
}

func bodyVec(body []tag, xCode int) r3.Vec {
	return r3.Vec{
		X: bodyFloat(body, xCode),
		Y: bodyFloat(body, xCode+10),
		Z: bodyFloat(body, xCode+20),
	}
}

func bodyCommon(body []tag) common {
	// 210/220/230 is the extrusion direction; absent means +Z (handled by
	// common.Normal).
	for _, t := range body {
		if t.code == 210 || t.code == 220 || t.code == 230 {
			return common{Extrusion: r3.Vec{
				X: bodyFloat(body, 210),
				Y: bodyFloat(body, 220),
				Z: bodyFloatDefault(body, 230, 1),
			}}
		}
	}
	return common{}
}

func parseLine(body []tag) Line {
	return Line{
		common: bodyCommon(body),
		Start:  bodyVec(body, 10),
		End:    bodyVec(body, 11),
	}
}

func parseCircle(body []tag) Circle {
	return Circle{
		common: bodyCommon(body),
		Center: bodyVec(body, 10),
		Radius: bodyFloat(body, 40),
	}
}

func parseArc(body []tag) Arc {
	return Arc{
		common:     bodyCommon(body),
		Center:     bodyVec(body, 10),
		Radius:     bodyFloat(body, 40),
		StartAngle: bodyFloat(body, 50),
		EndAngle:   bodyFloat(body, 51),
	}
}

func parseEllipse(body []tag) Ellipse {
	return Ellipse{
		common:    bodyCommon(body),
		Center:    bodyVec(body, 10),
		MajorAxis: bodyVec(body, 11),
		Ratio:     bodyFloatDefault(body, 40, 1),
		Start:     bodyFloat(body, 41),
		End:       bodyFloatDefault(body, 42, 2*math.Pi),
	}
}

func parseLWPolyline(body []tag) Polyline {
	poly := Polyline{
		common: bodyCommon(body),
		Closed: bodyInt(body, 70)&1 != 0,
	}
	// LWPOLYLINE repeats 10/20 pairs inline, one pair per vertex. The
	// elevation (38) supplies the shared Z.
	elevation := bodyFloat(body, 38)
	var current *r3.Vec
	for _, t := range body {
		switch t.code {
		case 10:
			poly.Vertices = append(poly.Vertices, r3.Vec{
				X: atofDefault(t.value, 0),
				Z: elevation,
			})
			current = &poly.Vertices[len(poly.Vertices)-1]
		case 20:
			if current != nil {
				current.Y = atofDefault(t.value, 0)
			}
		}
	}
	return poly
}

// parsePolyline consumes the old-style POLYLINE entity along with its VERTEX
// children up to SEQEND, returning the index after SEQEND.
func parsePolyline(body []tag, tags []tag, i int) (Polyline, int) {
	poly := Polyline{
		common: bodyCommon(body),
		Closed: bodyInt(body, 70)&1 != 0,
	}
	for i < len(tags) {
		if tags[i].code != 0 {
			i++
			continue
		}
		switch tags[i].value {
		case "VERTEX":
			var vbody []tag
			vbody, i = collectBody(tags, i+1)
			poly.Vertices = append(poly.Vertices, bodyVec(vbody, 10))
		case "SEQEND":
			_, i = collectBody(tags, i+1)
			return poly, i
		default:
			return poly, i
		}
	}
	return poly, i
}

func parseSpline(body []tag) Spline {
	spline := Spline{
		common: bodyCommon(body),
		Degree: bodyInt(body, 71),
		Closed: bodyInt(body, 70)&1 != 0,
	}
	var current *r3.Vec
	for _, t := range body {
		switch t.code {
		case 40:
			spline.Knots = append(spline.Knots, atofDefault(t.value, 0))
		case 10:
			spline.Controls = append(spline.Controls, r3.Vec{X: atofDefault(t.value, 0)})
			current = &spline.Controls[len(spline.Controls)-1]
		case 20:
			if current != nil {
				current.Y = atofDefault(t.value, 0)
			}
		case 30:
			if current != nil {
				current.Z = atofDefault(t.value, 0)
			}
		}
	}
	return spline
}

func atofDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
