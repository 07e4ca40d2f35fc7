package formula

import "strings"

// WaterModel selects how activity and climate adjust the daily water target.
type WaterModel int

const (
	// WaterMultiplicative scales the 35 ml/kg base by activity and climate factors.
	WaterMultiplicative WaterModel = iota
	// WaterAdditive adds fixed millilitre offsets and floors the result.
	WaterAdditive
)

func (m WaterModel) String() string {
	if m == WaterAdditive {
		return "additive"
	}
	return "multiplicative"
}

// Variant is one of the two constant sets the calculators were shipped with.
// The sets disagree on several constants; both are kept so either behaviour
// can be reproduced exactly.
type Variant struct {
	// Name is the configuration key selecting this variant.
	Name string

	// BloodSugarFactor converts mmol/L to mg/dL (multiply) and back (divide).
	BloodSugarFactor float64

	// ZoneBands are the heart-rate reserve fractions delimiting the training
	// zones. N+1 boundaries produce N zones.
	ZoneBands []float64

	// Water selects the additive or multiplicative water model.
	Water WaterModel

	// Clamp enables the floor clamps on body fat, six-minute walk (male) and
	// lean body mass.
	Clamp bool

	// QTcViaMillis computes the RR interval as 60000/HR ms and converts to
	// seconds before the square root, instead of 60/HR directly.
	QTcViaMillis bool
}

// Hub is variant A: the constants of the API-backed hub page.
var Hub = Variant{
	Name:             "hub",
	BloodSugarFactor: 18.016,
	ZoneBands:        []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	Water:            WaterMultiplicative,
}

// Local is variant B: the constants of the fully local formula set.
var Local = Variant{
	Name:             "local",
	BloodSugarFactor: 18.018,
	ZoneBands:        []float64{0.6, 0.7, 0.8, 0.9, 1.0},
	Water:            WaterAdditive,
	Clamp:            true,
	QTcViaMillis:     true,
}

// Variants lists every known variant in a stable order.
func Variants() []Variant {
	return []Variant{Hub, Local}
}

// VariantByName returns the variant registered under name (case-insensitive).
func VariantByName(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Hub.Name:
		return Hub, true
	case Local.Name:
		return Local, true
	default:
		return Variant{}, false
	}
}

// ZoneCount returns the number of heart-rate zones the variant produces.
func (v Variant) ZoneCount() int {
	if len(v.ZoneBands) < 2 {
		return 0
	}
	return len(v.ZoneBands) - 1
}
