package recon

import (
	"github.com/osuushi/vectile/dxf"
	"github.com/osuushi/vectile/geom"
)

// Reconstruct runs the full import pipeline on a parsed document: segment
// every entity in millimeters, stitch segments into closed loops, classify
// loops into solids and holes. A document with nothing reconstructable
// yields an empty slice, never an error; the caller decides how to surface
// "no shapes found".
func Reconstruct(doc *dxf.Document) []geom.Polygon {
	segments := Segments(doc.Entities, doc.Scale())
	stitched := Stitch(segments)
	loops := make([]geom.Loop, 0, len(stitched))
	for _, sl := range stitched {
		loops = append(loops, sl.Loop)
	}
	return Classify(loops)
}
