// Package formula holds the closed-form health formulas and the band tables
// used to interpret their results.
//
// body.go covers anthropometry: BMI, body fat (Deurenberg), BMR
// (Harris-Benedict), ideal body weight (Robinson), lean body mass (Boer) and
// body surface area (Du Bois).
//
// cardio.go covers QTc (Bazett), the ankle-brachial index, the six-minute
// walk prediction and heart-rate training zones.
//
// energy.go covers TDEE, macronutrient splits, protein, fiber and water
// targets. risk.go holds the diabetes point score. units.go holds the unit
// conversions.
//
// Every function is pure. Inputs outside a formula's domain (a zero divisor,
// a negative base under a fractional power) yield NaN rather than a panic;
// callers decide how to surface that.
//
// The two inconsistent constant sets found in the hub are kept side by side
// as the Hub and Local variants (variant.go). Nothing in this package picks
// one silently.
package formula
