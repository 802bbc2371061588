package dxf

import "log"

// $INSUNITS codes for the units this engine understands. Everything is
// normalized to millimeters downstream.
const (
	UnitUnspecified = 0
	UnitInches      = 1
	UnitFeet        = 2
	UnitMillimeters = 4
	UnitCentimeters = 5
	UnitMeters      = 6
)

// UnitScale maps a document's $INSUNITS code to a millimeters-per-unit
// factor. Unrecognized or absent codes fall back to 1.0 with a diagnostic;
// a weird unit should never sink an import.
func UnitScale(code int) float64 {
	switch code {
	case UnitInches:
		return 25.4
	case UnitFeet:
		return 304.8
	case UnitMillimeters:
		return 1.0
	case UnitCentimeters:
		return 10.0
	case UnitMeters:
		return 1000.0
	case UnitUnspecified:
		return 1.0
	default:
		log.Printf("dxf: unrecognized $INSUNITS code %d, assuming millimeters", code)
		return 1.0
	}
}
