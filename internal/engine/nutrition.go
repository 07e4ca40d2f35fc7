package engine

import (
	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

func computeTDEE(_ formula.Variant, in Inputs, r *Result) error {
	age, g, h, w, err := body(in)
	if err != nil {
		return err
	}
	bmr := formula.BMR(w, h, age, g)
	a := activityOf(in)
	r.detail("bmr", bmr)
	r.detail("multiplier", formula.ActivityMultiplier(a))
	r.Value = formula.TDEE(bmr, a)
	return nil
}

func finishTDEE(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	r.Interpretation = i18n.Format(l, "interp.tdee", i18n.Fixed(r.Value, 0), activityLabel(in, l))
}

func finishMaintenance(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	r.detail("weight_loss", r.Value-formula.MaintenanceDelta)
	r.detail("weight_gain", r.Value+formula.MaintenanceDelta)
	r.Interpretation = i18n.Format(l, "interp.maintenance_calories", i18n.Fixed(r.Value, 0))
}

// dailyCalories resolves the calorie budget: the calories input when given,
// else the TDEE when the body measurements are present, else the default
// for the gender. estimate disables the TDEE step.
func dailyCalories(in Inputs, estimate bool) (float64, error) {
	if in.Has("calories") {
		return in.Positive("calories")
	}
	g, err := genderOf(in)
	if err != nil {
		return 0, err
	}
	if estimate && in.Has("age") && in.Has("height") && in.Has("weight") {
		age, _, h, w, err := body(in)
		if err != nil {
			return 0, err
		}
		return formula.TDEE(formula.BMR(w, h, age, g), activityOf(in)), nil
	}
	return formula.DefaultCalories(g), nil
}

func computeMacronutrients(_ formula.Variant, in Inputs, r *Result) error {
	kcal, err := dailyCalories(in, true)
	if err != nil {
		return err
	}
	r.Value = kcal
	return nil
}

func finishMacronutrients(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	goal := formula.NormalizeGoal(in.Text("goal"))
	m := formula.Macronutrients(r.Value, goal)
	r.Status = formula.StatusNormal
	r.detail("calories", r.Value)
	r.detail("protein_g", m.ProteinG)
	r.detail("carbs_g", m.CarbsG)
	r.detail("fat_g", m.FatG)
	r.Interpretation = i18n.Format(l, "interp.macronutrients", i18n.Fixed(r.Value, 0), goalLabel(in, l))
}

func computeProtein(_ formula.Variant, in Inputs, r *Result) error {
	w, err := in.Positive("weight")
	if err != nil {
		return err
	}
	goal := formula.NormalizeGoal(in.Text("goal"))
	r.Value = formula.Protein(w, activityOf(in), goal)
	return nil
}

func finishProtein(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	if w, ok := num(in, "weight"); ok {
		r.detail("per_kg", r.Value/w)
	}
	r.Interpretation = i18n.Format(l, "interp.protein", activityLabel(in, l), goalLabel(in, l))
}

func computeFiber(_ formula.Variant, in Inputs, r *Result) error {
	kcal, err := dailyCalories(in, false)
	if err != nil {
		return err
	}
	r.detail("calories", kcal)
	r.Value = formula.Fiber(kcal)
	return nil
}

func finishFiber(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	r.Interpretation = i18n.T(l, "interp.fiber")
}

func computeWater(v formula.Variant, in Inputs, r *Result) error {
	w, err := in.Positive("weight")
	if err != nil {
		return err
	}
	climate := formula.NormalizeClimate(in.Text("climate"))
	r.Value = formula.WaterIntake(w, activityOf(in), climate, v.Water)
	return nil
}

func finishWater(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	cups := formula.WaterCups(r.Value)
	r.Status = formula.StatusNormal
	r.detail("liters", r.Value/1000)
	r.detail("cups", cups)
	r.Interpretation = i18n.Format(l, "interp.water_intake", i18n.Fixed(cups, 0))
}
