package engine

import (
	"strings"

	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

// computeFunc validates the inputs and sets the primary value and any
// input-derived details on r.
type computeFunc func(v formula.Variant, in Inputs, r *Result) error

// finishFunc derives the category, interpretation and value-derived details
// from r.Value. It runs for local and remote values alike.
type finishFunc func(v formula.Variant, r *Result, in Inputs, l i18n.Locale)

// Calculator describes one registered formula.
type Calculator struct {
	ID       string   `json:"id"`
	Path     string   `json:"path"`
	Unit     string   `json:"unit,omitempty"`
	Required []string `json:"required"`
	Optional []string `json:"optional,omitempty"`
	Remote   bool     `json:"remote"`

	// keys are the payload fields carrying the primary value, in lookup
	// order. keys[0] is the name used when serving the payload.
	keys []string

	// aliases maps a detail name onto the payload field carrying it.
	aliases map[string]string

	compute computeFunc
	finish  finishFunc
}

var registry = []*Calculator{
	{
		ID: "bmi", Path: "bmi", Remote: true,
		Required: []string{"height", "weight"},
		keys:     []string{"bmi"},
		compute:  computeBMI, finish: finishBMI,
	},
	{
		ID: "body_fat", Path: "body-fat-percentage", Unit: "%", Remote: true,
		Required: []string{"age", "gender", "height", "weight"},
		Optional: []string{"waist"},
		keys:     []string{"body_fat_percentage", "bodyFatPercentage"},
		compute:  computeBodyFat, finish: finishBodyFat,
	},
	{
		ID: "bmr", Path: "bmr", Unit: "kcal/day", Remote: true,
		Required: []string{"age", "gender", "height", "weight"},
		keys:     []string{"bmr"},
		compute:  computeBMR, finish: finishBMR,
	},
	{
		ID: "ideal_weight", Path: "ibw", Unit: "kg", Remote: true,
		Required: []string{"height", "gender"},
		Optional: []string{"weight"},
		keys:     []string{"ideal_body_weight", "ibw"},
		compute:  computeIdealWeight, finish: finishIdealWeight,
	},
	{
		ID: "qtc", Path: "qtc", Unit: "ms", Remote: true,
		Required: []string{"qt_interval", "heart_rate"},
		keys:     []string{"qtc_bazett", "bazett"},
		compute:  computeQTc, finish: finishQTc,
	},
	{
		ID: "abi", Path: "abi", Remote: true,
		Required: []string{"ankle_systolic", "brachial_systolic"},
		keys:     []string{"abi"},
		compute:  computeABI, finish: finishABI,
	},
	{
		ID: "six_minute_walk", Path: "6mwt", Unit: "m", Remote: true,
		Required: []string{"age", "gender", "height", "weight"},
		Optional: []string{"distance"},
		keys:     []string{"predicted_distance", "predicted"},
		compute:  computeSixMinuteWalk, finish: finishSixMinuteWalk,
	},
	{
		ID: "diabetes_risk", Path: "diabetes-risk", Unit: "%", Remote: true,
		Required: []string{"age"},
		Optional: []string{"bmi", "height", "weight", "systolic_bp", "family_history", "hypertension", "low_activity", "activity_level"},
		keys:     []string{"risk_percentage", "risk"},
		compute:  computeDiabetesRisk, finish: finishDiabetesRisk,
	},
	{
		ID: "tdee", Path: "tdee", Unit: "kcal/day", Remote: true,
		Required: []string{"age", "gender", "height", "weight", "activity_level"},
		keys:     []string{"tdee"},
		compute:  computeTDEE, finish: finishTDEE,
	},
	{
		ID: "maintenance_calories", Path: "maintenance-calories", Unit: "kcal/day", Remote: true,
		Required: []string{"age", "gender", "height", "weight", "activity_level"},
		keys:     []string{"maintenance_calories", "calories"},
		compute:  computeTDEE, finish: finishMaintenance,
	},
	{
		ID: "lbm", Path: "lbm", Unit: "kg", Remote: true,
		Required: []string{"gender", "height", "weight"},
		keys:     []string{"lean_body_mass", "lbm"},
		compute:  computeLBM, finish: finishLBM,
	},
	{
		ID: "bsa", Path: "bsa", Unit: "m²", Remote: true,
		Required: []string{"height", "weight"},
		keys:     []string{"body_surface_area", "bsa"},
		compute:  computeBSA, finish: finishBSA,
	},
	{
		ID: "macronutrients", Path: "macronutrients", Unit: "kcal/day", Remote: true,
		Optional: []string{"calories", "gender", "age", "height", "weight", "activity_level", "goal"},
		keys:     []string{"calories"},
		aliases:  map[string]string{"protein_g": "protein", "carbs_g": "carbohydrates", "fat_g": "fat"},
		compute:  computeMacronutrients, finish: finishMacronutrients,
	},
	{
		ID: "protein", Path: "protein", Unit: "g/day", Remote: true,
		Required: []string{"weight"},
		Optional: []string{"activity_level", "goal"},
		keys:     []string{"protein", "daily_protein"},
		compute:  computeProtein, finish: finishProtein,
	},
	{
		ID: "fiber", Path: "fiber", Unit: "g/day", Remote: true,
		Optional: []string{"calories", "gender", "age"},
		keys:     []string{"fiber", "daily_fiber"},
		compute:  computeFiber, finish: finishFiber,
	},
	{
		ID: "water_intake", Path: "water-intake", Unit: "ml/day",
		Required: []string{"weight"},
		Optional: []string{"activity_level", "climate"},
		keys:     []string{"water_intake"},
		compute:  computeWater, finish: finishWater,
	},
	{
		ID: "blood_sugar", Path: "blood-sugar",
		Required: []string{"value", "unit"},
		keys:     []string{"converted"},
		compute:  computeBloodSugar, finish: finishBloodSugar,
	},
	{
		ID: "cholesterol", Path: "cholesterol",
		Required: []string{"value", "unit"},
		Optional: []string{"type"},
		keys:     []string{"converted"},
		compute:  computeCholesterol, finish: finishCholesterol,
	},
	{
		ID: "heart_rate_zones", Path: "heart-rate-zones", Unit: "bpm",
		Required: []string{"age"},
		Optional: []string{"resting_hr"},
		keys:     []string{"max_heart_rate"},
		compute:  computeHeartRateZones, finish: finishHeartRateZones,
	},
	{
		ID: "unit_conversion", Path: "unit-conversion",
		Required: []string{"value", "from"},
		Optional: []string{"to", "type"},
		keys:     []string{"value"},
		compute:  computeUnitConversion, finish: finishUnitConversion,
	},
}

var byName = func() map[string]*Calculator {
	m := make(map[string]*Calculator, 2*len(registry))
	for _, c := range registry {
		m[c.ID] = c
		m[c.Path] = c
	}
	return m
}()

// Lookup finds a calculator by id (bmi, six_minute_walk) or remote path
// (6mwt, body-fat-percentage).
func Lookup(name string) (*Calculator, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := byName[key]; ok {
		return c, true
	}
	c, ok := byName[strings.ReplaceAll(key, "-", "_")]
	return c, ok
}

// Calculators returns every registered calculator in display order.
func Calculators() []Calculator {
	out := make([]Calculator, len(registry))
	for i, c := range registry {
		out[i] = *c
	}
	return out
}

// PayloadKey is the field name carrying the primary value in a flat payload.
func (c *Calculator) PayloadKey() string {
	return c.keys[0]
}

func (c *Calculator) checkRequired(in Inputs) error {
	for _, k := range c.Required {
		if !in.Has(k) {
			return missing(k)
		}
	}
	return nil
}

// pick returns the first payload field carrying the primary value.
func (c *Calculator) pick(payload map[string]float64) (float64, bool) {
	for _, k := range c.keys {
		if v, ok := payload[k]; ok {
			return v, true
		}
	}
	return 0, false
}

// params renders the calculator's inputs as remote query parameters.
// Absent and empty values are left out.
func (c *Calculator) params(in Inputs) map[string]string {
	out := make(map[string]string)
	for _, group := range [][]string{c.Required, c.Optional} {
		for _, k := range group {
			if s := in.Text(k); s != "" {
				out[k] = s
			}
		}
	}
	return out
}

func genderOf(in Inputs) (formula.Gender, error) {
	s := in.Text("gender")
	if s == "" {
		return "", missing("gender")
	}
	g, ok := formula.ParseGender(s)
	if !ok {
		return "", invalid("gender")
	}
	return g, nil
}

func activityOf(in Inputs) formula.ActivityLevel {
	return formula.NormalizeActivity(in.Text("activity_level"))
}

// activityLabel names the activity level; unknown levels read as sedentary,
// matching the multiplier they receive.
func activityLabel(in Inputs, l i18n.Locale) string {
	a := activityOf(in)
	if !a.Known() {
		a = formula.Sedentary
	}
	return i18n.T(l, "activity."+string(a))
}

func goalLabel(in Inputs, l i18n.Locale) string {
	return i18n.T(l, "goal."+string(formula.NormalizeGoal(in.Text("goal"))))
}

// num reads an optional positive number, ignoring anything unusable.
func num(in Inputs, key string) (float64, bool) {
	f, err := in.Positive(key)
	return f, err == nil
}

// body reads the common age/gender/height/weight quadruple.
func body(in Inputs) (age float64, g formula.Gender, heightCm, weightKg float64, err error) {
	if age, err = in.NonNegative("age"); err != nil {
		return
	}
	if g, err = genderOf(in); err != nil {
		return
	}
	if heightCm, err = in.Positive("height"); err != nil {
		return
	}
	weightKg, err = in.Positive("weight")
	return
}
