package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Conversion constants.
const (
	LbPerKg       = 2.20462
	StonePerKg    = 0.157473
	LbPerStone    = 14.0
	CmPerInch     = 2.54
	CmPerMeter    = 100.0
	InchesPerFoot = 12.0

	// CholesterolFactor converts cholesterol between mmol/L and mg/dL.
	CholesterolFactor = 38.67
)

// Unit is a measurement unit accepted by Convert.
type Unit string

const (
	Kilogram   Unit = "kg"
	Pound      Unit = "lb"
	Stone      Unit = "stone"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Inch       Unit = "in"
	Foot       Unit = "ft"

	MgPerDL  Unit = "mg/dL"
	MmolPerL Unit = "mmol/L"
)

// Unit families.
const (
	FamilyMass   = "weight"
	FamilyLength = "height"
)

// ErrUnknownUnit is returned for a unit Convert does not know.
var ErrUnknownUnit = errors.New("formula: unknown unit")

// ErrIncompatibleUnits is returned when converting across families.
var ErrIncompatibleUnits = errors.New("formula: incompatible units")

var unitFamilies = map[Unit]string{
	Kilogram:   FamilyMass,
	Pound:      FamilyMass,
	Stone:      FamilyMass,
	Centimeter: FamilyLength,
	Meter:      FamilyLength,
	Inch:       FamilyLength,
	Foot:       FamilyLength,
}

// familyUnits lists each family's units in display order.
var familyUnits = map[string][]Unit{
	FamilyMass:   {Kilogram, Pound, Stone},
	FamilyLength: {Centimeter, Foot, Inch, Meter},
}

// ParseUnit resolves a unit name, accepting a few long forms.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kilogram", "kilograms":
		return Kilogram, true
	case "lb", "lbs", "pound", "pounds":
		return Pound, true
	case "stone", "stones", "st":
		return Stone, true
	case "cm", "centimeter", "centimeters":
		return Centimeter, true
	case "m", "meter", "meters":
		return Meter, true
	case "in", "inch", "inches":
		return Inch, true
	case "ft", "foot", "feet":
		return Foot, true
	case "mg/dl", "mgdl":
		return MgPerDL, true
	case "mmol/l", "mmol":
		return MmolPerL, true
	}
	return "", false
}

// Family returns the family of u ("weight" or "height"), or "" if u is not
// convertible by Convert.
func Family(u Unit) string {
	return unitFamilies[u]
}

// FamilyUnits returns the units of a family in display order.
func FamilyUnits(family string) []Unit {
	return familyUnits[family]
}

// Linear conversions. None of them clamp.
func KgToLb(kg float64) float64 { return kg * LbPerKg }
func LbToKg(lb float64) float64 { return lb / LbPerKg }
func KgToStone(kg float64) float64 { return kg * StonePerKg }
func StoneToKg(st float64) float64 { return st / StonePerKg }
func LbToStone(lb float64) float64 { return lb / LbPerStone }
func StoneToLb(st float64) float64 { return st * LbPerStone }
func CmToIn(cm float64) float64 { return cm / CmPerInch }
func InToCm(in float64) float64 { return in * CmPerInch }
func CmToM(cm float64) float64 { return cm / CmPerMeter }
func MToCm(m float64) float64 { return m * CmPerMeter }
func InToFt(in float64) float64 { return in / InchesPerFoot }
func FtToIn(ft float64) float64 { return ft * InchesPerFoot }
func MgDLToMmolL(v, f float64) float64 { return v / f }
func MmolLToMgDL(v, f float64) float64 { return v * f }

// FeetInches splits a length in inches into whole feet and remaining inches.
func FeetInches(totalIn float64) (feet int, inches float64) {
	ft := math.Floor(totalIn / InchesPerFoot)
	return int(ft), totalIn - ft*InchesPerFoot
}

// FeetInchesString renders a length in inches as 5'9", rounding to the
// nearest inch and carrying 12" into the next foot.
func FeetInchesString(totalIn float64) string {
	feet, rest := FeetInches(totalIn)
	in := int(math.Round(rest))
	if in == int(InchesPerFoot) {
		feet++
		in = 0
	}
	return fmt.Sprintf("%d'%d\"", feet, in)
}

// Convert converts value between two units of the same family. Mass pairs use
// the direct factors (kg/lb, kg/stone, lb/stone); length goes through cm.
func Convert(value float64, from, to Unit) (float64, error) {
	ff, ok := unitFamilies[from]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownUnit, from)
	}
	tf, ok := unitFamilies[to]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownUnit, to)
	}
	if ff != tf {
		return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleUnits, from, to)
	}
	if from == to {
		return value, nil
	}
	if ff == FamilyMass {
		return convertMass(value, from, to), nil
	}
	return fromCm(toCm(value, from), to), nil
}

func convertMass(v float64, from, to Unit) float64 {
	switch {
	case from == Kilogram && to == Pound:
		return KgToLb(v)
	case from == Pound && to == Kilogram:
		return LbToKg(v)
	case from == Kilogram && to == Stone:
		return KgToStone(v)
	case from == Stone && to == Kilogram:
		return StoneToKg(v)
	case from == Pound && to == Stone:
		return LbToStone(v)
	case from == Stone && to == Pound:
		return StoneToLb(v)
	}
	return v
}

func toCm(v float64, u Unit) float64 {
	switch u {
	case Meter:
		return MToCm(v)
	case Inch:
		return InToCm(v)
	case Foot:
		return InToCm(FtToIn(v))
	}
	return v
}

func fromCm(cm float64, u Unit) float64 {
	switch u {
	case Meter:
		return CmToM(cm)
	case Inch:
		return CmToIn(cm)
	case Foot:
		return InToFt(CmToIn(cm))
	}
	return cm
}
