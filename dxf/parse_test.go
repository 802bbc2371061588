package dxf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/vectile/internal"
)

// tagsDoc assembles DXF text from alternating code/value strings, which is
// far easier to read than a raw fixture blob.
func tagsDoc(pairs ...string) []byte {
	return []byte(strings.Join(pairs, "\n") + "\n")
}

func TestParseHeaderUnits(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "HEADER",
		"9", "$INSUNITS",
		"70", "1",
		"0", "ENDSEC",
		"0", "EOF",
	))
	assert.Equal(t, UnitInches, doc.Units)
	assert.InDelta(t, 25.4, doc.Scale(), 1e-9)
}

func TestUnitScaleTable(t *testing.T) {
	assert.Equal(t, 25.4, UnitScale(UnitInches))
	assert.Equal(t, 304.8, UnitScale(UnitFeet))
	assert.Equal(t, 1.0, UnitScale(UnitMillimeters))
	assert.Equal(t, 10.0, UnitScale(UnitCentimeters))
	assert.Equal(t, 1000.0, UnitScale(UnitMeters))
	// Unrecognized or absent codes are not fatal.
	assert.Equal(t, 1.0, UnitScale(UnitUnspecified))
	assert.Equal(t, 1.0, UnitScale(99))
}

func TestParseLine(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "0",
		"10", "1.5",
		"20", "2.5",
		"30", "0",
		"11", "10",
		"21", "20",
		"31", "0",
		"0", "ENDSEC",
		"0", "EOF",
	))
	assert.Len(t, doc.Entities, 1)
	line := doc.Entities[0].(Line)
	assert.Equal(t, r3.Vec{X: 1.5, Y: 2.5}, line.Start)
	assert.Equal(t, r3.Vec{X: 10, Y: 20}, line.End)
	// No extrusion codes: the normal defaults to +Z.
	assert.Equal(t, r3.Vec{Z: 1}, line.Normal())
}

func TestParseArcWithExtrusion(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "ARC",
		"10", "1",
		"20", "2",
		"30", "0",
		"40", "5",
		"50", "30",
		"51", "120",
		"210", "0",
		"220", "0",
		"230", "-1",
		"0", "ENDSEC",
	))
	arc := doc.Entities[0].(Arc)
	assert.Equal(t, 5.0, arc.Radius)
	assert.Equal(t, 30.0, arc.StartAngle)
	assert.Equal(t, 120.0, arc.EndAngle)
	assert.Equal(t, r3.Vec{Z: -1}, arc.Normal())
}

func TestParseLWPolyline(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LWPOLYLINE",
		"90", "4",
		"70", "1",
		"10", "0", "20", "0",
		"10", "10", "20", "0",
		"10", "10", "20", "10",
		"10", "0", "20", "10",
		"0", "ENDSEC",
	))
	poly := doc.Entities[0].(Polyline)
	assert.True(t, poly.Closed)
	assert.Len(t, poly.Vertices, 4)
	assert.Equal(t, r3.Vec{X: 10, Y: 10}, poly.Vertices[2])
}

func TestParsePolylineWithVertices(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "POLYLINE",
		"70", "1",
		"0", "VERTEX",
		"10", "0", "20", "0",
		"0", "VERTEX",
		"10", "5", "20", "0",
		"0", "VERTEX",
		"10", "5", "20", "5",
		"0", "SEQEND",
		"0", "CIRCLE",
		"10", "0", "20", "0",
		"40", "3",
		"0", "ENDSEC",
	))
	assert.Len(t, doc.Entities, 2)
	poly := doc.Entities[0].(Polyline)
	assert.True(t, poly.Closed)
	assert.Len(t, poly.Vertices, 3)
	circle := doc.Entities[1].(Circle)
	assert.Equal(t, 3.0, circle.Radius)
}

func TestParseSpline(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "SPLINE",
		"71", "2",
		"40", "0", "40", "0", "40", "0",
		"40", "1", "40", "1", "40", "1",
		"10", "0", "20", "0", "30", "0",
		"10", "5", "20", "10", "30", "0",
		"10", "10", "20", "0", "30", "0",
		"0", "ENDSEC",
	))
	spline := doc.Entities[0].(Spline)
	assert.Equal(t, 2, spline.Degree)
	assert.Len(t, spline.Knots, 6)
	assert.Len(t, spline.Controls, 3)
}

func TestParseUnsupportedEntitiesSkipped(t *testing.T) {
	doc := Parse(tagsDoc(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "TEXT",
		"1", "hello",
		"0", "LINE",
		"10", "0", "20", "0",
		"11", "1", "21", "1",
		"0", "ENDSEC",
	))
	assert.Len(t, doc.Entities, 1)
}

func TestParseGarbage(t *testing.T) {
	// Unparseable input degrades to an empty document, never an error.
	doc := Parse([]byte("this is not a drawing"))
	assert.Empty(t, doc.Entities)
	assert.Equal(t, UnitUnspecified, doc.Units)
}

func TestParseBinarySentinelPanics(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = internal.HandleContractPanic(recover())
		}()
		Parse([]byte("AutoCAD Binary DXF\r\n\x1a\x00garbage"))
		return nil
	}()
	assert.Error(t, err)
}
