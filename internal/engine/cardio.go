package engine

import (
	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

func computeQTc(v formula.Variant, in Inputs, r *Result) error {
	qt, err := in.Positive("qt_interval")
	if err != nil {
		return err
	}
	hr, err := in.Number("heart_rate")
	if err != nil {
		return err
	}
	if hr > 0 {
		r.detail("rr_seconds", 60/hr)
	}
	r.Value = formula.QTc(qt, hr, v.QTcViaMillis)
	return nil
}

func finishQTc(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.band(formula.ClassifyQTc(r.Value), l)
	r.Interpretation = i18n.T(l, "interp.qtc."+r.Category)
}

func computeABI(_ formula.Variant, in Inputs, r *Result) error {
	ankle, err := in.NonNegative("ankle_systolic")
	if err != nil {
		return err
	}
	brachial, err := in.NonNegative("brachial_systolic")
	if err != nil {
		return err
	}
	r.Value = formula.ABI(ankle, brachial)
	return nil
}

func finishABI(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.band(formula.ClassifyABI(r.Value), l)
	r.Interpretation = i18n.T(l, "interp.abi."+r.Category)
}

func computeSixMinuteWalk(v formula.Variant, in Inputs, r *Result) error {
	age, g, h, w, err := body(in)
	if err != nil {
		return err
	}
	if in.Has("distance") {
		if _, err := in.NonNegative("distance"); err != nil {
			return err
		}
	}
	r.Value = formula.SixMinuteWalk(h, w, age, g, v.Clamp)
	return nil
}

// finishSixMinuteWalk reports a non-positive prediction as undefined: no
// percent of predicted can be formed from it.
func finishSixMinuteWalk(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	if r.Value <= 0 {
		r.markUndefined(l)
		return
	}
	r.detail("predicted", r.Value)
	d, err := in.NonNegative("distance")
	if err != nil {
		r.Status = formula.StatusNormal
		r.Interpretation = i18n.Format(l, "interp.six_minute_walk", i18n.Fixed(r.Value, 0))
		return
	}
	pct := formula.WalkPercent(d, r.Value)
	if !finite(pct) {
		r.markUndefined(l)
		return
	}
	r.detail("distance", d)
	r.detail("percent_predicted", pct)
	r.band(formula.ClassifyWalkPercent(pct), l)
	r.Interpretation = i18n.Format(l, "interp.six_minute_walk.performed", i18n.Fixed(d, 0), i18n.Fixed(pct, 0))
}

func computeDiabetesRisk(_ formula.Variant, in Inputs, r *Result) error {
	age, err := in.NonNegative("age")
	if err != nil {
		return err
	}
	bmi, err := diabetesBMI(in)
	if err != nil {
		return err
	}
	family, err := in.Flag("family_history")
	if err != nil {
		return err
	}
	hyper, err := in.Flag("hypertension")
	if err != nil {
		return err
	}
	sbp, err := in.NumberOr("systolic_bp", 0)
	if err != nil {
		return err
	}
	low, err := in.Flag("low_activity")
	if err != nil {
		return err
	}
	if in.Has("activity_level") && activityOf(in) == formula.Sedentary {
		low = true
	}

	score := formula.DiabetesPoints(formula.DiabetesFactors{
		Age:           age,
		BMI:           bmi,
		FamilyHistory: family,
		Hypertension:  hyper || sbp >= formula.HypertensiveSystolic,
		LowActivity:   low,
	})
	r.detail("score", float64(score))
	r.detail("bmi", bmi)
	r.Value = formula.DiabetesRiskPercent(score)
	return nil
}

// diabetesBMI takes bmi as given, or derives it from height and weight.
func diabetesBMI(in Inputs) (float64, error) {
	if in.Has("bmi") {
		return in.Positive("bmi")
	}
	if !in.Has("height") || !in.Has("weight") {
		return 0, missing("bmi")
	}
	h, err := in.Positive("height")
	if err != nil {
		return 0, err
	}
	w, err := in.Positive("weight")
	if err != nil {
		return 0, err
	}
	return formula.BMI(w, h), nil
}

func finishDiabetesRisk(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.band(formula.ClassifyDiabetesRisk(r.Value), l)
	r.Interpretation = i18n.Format(l, "interp.diabetes_risk", i18n.Fixed(r.Value, 1))
}

func computeHeartRateZones(v formula.Variant, in Inputs, r *Result) error {
	age, err := in.NonNegative("age")
	if err != nil {
		return err
	}
	rest, err := in.NumberOr("resting_hr", formula.DefaultRestingHR)
	if err != nil {
		return err
	}
	if rest <= 0 {
		return invalid("resting_hr")
	}
	maxHR, zones := formula.HeartRateZones(age, rest, v.ZoneBands)
	r.Value = maxHR
	r.detail("resting_hr", rest)
	r.detail("reserve", maxHR-rest)
	for _, z := range zones {
		r.Zones = append(r.Zones, ZoneResult{Key: z.Key, Lower: z.Lower, Upper: z.Upper, Min: z.Min, Max: z.Max})
	}
	return nil
}

// finishHeartRateZones reports an empty or negative reserve as undefined.
func finishHeartRateZones(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	if reserve, ok := r.Details["reserve"]; ok && reserve <= 0 {
		r.markUndefined(l)
		return
	}
	if r.Value <= 0 {
		r.markUndefined(l)
		return
	}
	for i := range r.Zones {
		r.Zones[i].Name = i18n.T(l, "zone."+r.Zones[i].Key)
	}
	r.Status = formula.StatusNormal
	r.Interpretation = i18n.Format(l, "interp.heart_rate_zones", i18n.Fixed(r.Value, 0))
}
