package engine

import (
	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

func computeBMI(_ formula.Variant, in Inputs, r *Result) error {
	h, err := in.Positive("height")
	if err != nil {
		return err
	}
	w, err := in.Positive("weight")
	if err != nil {
		return err
	}
	r.Value = formula.BMI(w, h)
	return nil
}

func finishBMI(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.band(formula.ClassifyBMI(r.Value), l)
	r.Interpretation = i18n.T(l, "interp.bmi."+r.Category)
}

func computeBodyFat(v formula.Variant, in Inputs, r *Result) error {
	age, g, h, w, err := body(in)
	if err != nil {
		return err
	}
	bmi := formula.BMI(w, h)
	r.detail("bmi", bmi)
	r.Value = formula.BodyFat(bmi, age, g, v.Clamp)
	return nil
}

func finishBodyFat(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	r.Interpretation = i18n.T(l, "interp.body_fat")
}

func computeBMR(_ formula.Variant, in Inputs, r *Result) error {
	age, g, h, w, err := body(in)
	if err != nil {
		return err
	}
	r.Value = formula.BMR(w, h, age, g)
	return nil
}

func finishBMR(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	r.Interpretation = i18n.Format(l, "interp.bmr", i18n.Fixed(r.Value, 0))
}

func computeIdealWeight(_ formula.Variant, in Inputs, r *Result) error {
	h, err := in.Positive("height")
	if err != nil {
		return err
	}
	g, err := genderOf(in)
	if err != nil {
		return err
	}
	r.Value = formula.IdealWeight(h, g)
	return nil
}

func finishIdealWeight(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	w, ok := num(in, "weight")
	if !ok {
		r.Interpretation = i18n.Format(l, "interp.ideal_weight", i18n.Fixed(r.Value, 1))
		return
	}
	r.detail("current_weight", w)
	r.detail("difference", w-r.Value)
	r.Interpretation = i18n.Format(l, "interp.ideal_weight.current", i18n.Fixed(r.Value, 1), i18n.Fixed(w, 1))
}

func computeLBM(v formula.Variant, in Inputs, r *Result) error {
	g, err := genderOf(in)
	if err != nil {
		return err
	}
	h, err := in.Positive("height")
	if err != nil {
		return err
	}
	w, err := in.Positive("weight")
	if err != nil {
		return err
	}
	r.Value = formula.LBM(w, h, g, v.Clamp)
	return nil
}

func finishLBM(_ formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	r.Status = formula.StatusNormal
	w, ok := num(in, "weight")
	if !ok {
		return
	}
	ratio := r.Value / w * 100
	fatMass := w - r.Value
	fatPct := fatMass / w * 100
	if !finite(ratio) || !finite(fatPct) {
		r.markUndefined(l)
		return
	}
	r.detail("lean_ratio_pct", ratio)
	r.detail("fat_mass", fatMass)
	r.detail("fat_pct", fatPct)
	r.Interpretation = i18n.Format(l, "interp.lbm",
		i18n.Fixed(r.Value, 1), i18n.Fixed(ratio, 1), i18n.Fixed(fatMass, 1), i18n.Fixed(fatPct, 1))
}

func computeBSA(_ formula.Variant, in Inputs, r *Result) error {
	h, err := in.Positive("height")
	if err != nil {
		return err
	}
	w, err := in.Positive("weight")
	if err != nil {
		return err
	}
	r.Value = formula.BSA(w, h)
	return nil
}

func finishBSA(_ formula.Variant, r *Result, _ Inputs, l i18n.Locale) {
	r.band(formula.ClassifyBSA(r.Value), l)
	r.Interpretation = i18n.Format(l, "interp.bsa", i18n.Fixed(r.Value, 2))
}
