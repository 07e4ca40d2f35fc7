package engine

import (
	"strconv"
	"strings"

	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

// glucoseUnit parses the unit input of the blood sugar and cholesterol
// converters.
func glucoseUnit(in Inputs) (formula.Unit, error) {
	u, ok := formula.ParseUnit(in.Text("unit"))
	if !ok || (u != formula.MgPerDL && u != formula.MmolPerL) {
		return "", invalid("unit")
	}
	return u, nil
}

// convertConcentration converts value from u to the other unit.
func convertConcentration(value float64, u formula.Unit, factor float64) (float64, formula.Unit) {
	if u == formula.MmolPerL {
		return formula.MmolLToMgDL(value, factor), formula.MgPerDL
	}
	return formula.MgDLToMmolL(value, factor), formula.MmolPerL
}

func computeBloodSugar(v formula.Variant, in Inputs, r *Result) error {
	value, err := in.Positive("value")
	if err != nil {
		return err
	}
	u, err := glucoseUnit(in)
	if err != nil {
		return err
	}
	converted, to := convertConcentration(value, u, v.BloodSugarFactor)
	r.Value = converted
	r.Unit = string(to)
	r.detail("original", value)
	r.detail("factor", v.BloodSugarFactor)
	return nil
}

// finishBloodSugar classifies the reading in the unit it was entered in and
// quotes the fasting range in the converted unit.
func finishBloodSugar(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.detail("converted", r.Value)
	if value, err := in.Positive("value"); err == nil {
		if u, err := glucoseUnit(in); err == nil {
			r.band(formula.ClassifyFastingGlucose(value, u), l)
		}
	}
	r.Interpretation = i18n.T(l, "interp.blood_sugar."+r.Unit)
}

var cholesterolTypes = map[string]bool{"total": true, "hdl": true, "ldl": true}

func cholesterolType(in Inputs) (string, error) {
	t := strings.ToLower(in.Text("type"))
	if t == "" {
		return "total", nil
	}
	if !cholesterolTypes[t] {
		return "", invalid("type")
	}
	return t, nil
}

func computeCholesterol(_ formula.Variant, in Inputs, r *Result) error {
	value, err := in.Positive("value")
	if err != nil {
		return err
	}
	u, err := glucoseUnit(in)
	if err != nil {
		return err
	}
	if _, err := cholesterolType(in); err != nil {
		return err
	}
	converted, to := convertConcentration(value, u, formula.CholesterolFactor)
	r.Value = converted
	r.Unit = string(to)
	r.detail("original", value)
	r.detail("factor", formula.CholesterolFactor)
	return nil
}

func finishCholesterol(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	t, err := cholesterolType(in)
	if err != nil {
		t = "total"
	}
	r.Status = formula.StatusNormal
	r.detail("converted", r.Value)
	r.Interpretation = i18n.T(l, "interp.cholesterol."+t)
}

func computeUnitConversion(_ formula.Variant, in Inputs, r *Result) error {
	value, err := in.NonNegative("value")
	if err != nil {
		return err
	}
	from, ok := formula.ParseUnit(in.Text("from"))
	family := formula.Family(from)
	if !ok || family == "" {
		return invalid("from")
	}
	if t := strings.ToLower(in.Text("type")); t != "" && t != family {
		return invalid("type")
	}

	r.Value, r.Unit = value, string(from)
	if in.Has("to") {
		to, ok := formula.ParseUnit(in.Text("to"))
		if !ok {
			return invalid("to")
		}
		cv, err := formula.Convert(value, from, to)
		if err != nil {
			return invalid("to")
		}
		r.Value, r.Unit = cv, string(to)
	}

	for _, u := range formula.FamilyUnits(family) {
		if u == from {
			continue
		}
		cv, err := formula.Convert(value, from, u)
		if err != nil {
			return err
		}
		c := Conversion{Unit: string(u), Value: cv}
		if u == formula.Foot {
			inches, _ := formula.Convert(value, from, formula.Inch)
			c.Display = formula.FeetInchesString(inches)
		}
		r.Conversions = append(r.Conversions, c)
	}
	return nil
}

func finishUnitConversion(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	value, _ := in.Number("value")
	r.Interpretation = i18n.Format(l, "interp.unit_conversion",
		strconv.FormatFloat(value, 'f', -1, 64), in.Text("from"))
}
