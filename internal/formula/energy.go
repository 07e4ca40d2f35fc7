package formula

import "math"

const (
	// DefaultActivityMultiplier applies to any activity level not in the table.
	DefaultActivityMultiplier = 1.2

	// MaintenanceDelta is the daily kcal offset suggested for weight loss or gain.
	MaintenanceDelta = 400.0

	// Default daily calorie estimates used by the fiber target.
	DefaultCaloriesMale   = 2500.0
	DefaultCaloriesFemale = 2000.0

	fiberPer1000Kcal = 14.0

	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0

	waterMlPerKg       = 35.0
	MinWaterAdditiveMl = 1500.0
	MlPerCup           = 250.0
)

// activityMultipliers is the TDEE multiplier table.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtremelyActive:  1.9,
}

// ActivityMultiplier returns the TDEE multiplier for a, or
// DefaultActivityMultiplier when a is not a known level.
func ActivityMultiplier(a ActivityLevel) float64 {
	if m, ok := activityMultipliers[NormalizeActivity(string(a))]; ok {
		return m
	}
	return DefaultActivityMultiplier
}

// TDEE returns total daily energy expenditure: BMR times the activity multiplier.
// Maintenance calories are the same number.
func TDEE(bmr float64, a ActivityLevel) float64 {
	return bmr * ActivityMultiplier(a)
}

// MacroSplit is a protein/carbohydrate/fat split of daily calories, in percent.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// macroSplits holds the split per goal. Maintenance is the fallback.
var macroSplits = map[Goal]MacroSplit{
	WeightLoss:  {Protein: 35, Carbs: 25, Fat: 40},
	WeightGain:  {Protein: 25, Carbs: 45, Fat: 30},
	Maintenance: {Protein: 30, Carbs: 40, Fat: 30},
}

// SplitFor returns the macronutrient split for goal g.
func SplitFor(g Goal) MacroSplit {
	if s, ok := macroSplits[NormalizeGoal(string(g))]; ok {
		return s
	}
	return macroSplits[Maintenance]
}

// Macros holds daily macronutrient targets in grams.
type Macros struct {
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// Macronutrients converts daily calories into gram targets for goal g.
func Macronutrients(calories float64, g Goal) Macros {
	s := SplitFor(g)
	return Macros{
		ProteinG: calories * s.Protein / 100 / kcalPerGramProtein,
		CarbsG:   calories * s.Carbs / 100 / kcalPerGramCarb,
		FatG:     calories * s.Fat / 100 / kcalPerGramFat,
	}
}

// proteinMultipliers is g protein per kg body weight: [maintain, weight_loss].
var proteinMultipliers = map[ActivityLevel][2]float64{
	Sedentary:        {0.8, 1.2},
	LightlyActive:    {1.0, 1.4},
	ModeratelyActive: {1.2, 1.6},
	VeryActive:       {1.6, 2.0},
	ExtremelyActive:  {1.6, 2.0},
}

// weightGainProteinBonus is added to the maintain multiplier for weight gain.
const weightGainProteinBonus = 0.2

// ProteinMultiplier returns g protein per kg for the activity level and goal.
// Unknown activity levels use the sedentary row.
func ProteinMultiplier(a ActivityLevel, g Goal) float64 {
	row, ok := proteinMultipliers[NormalizeActivity(string(a))]
	if !ok {
		row = proteinMultipliers[Sedentary]
	}
	switch NormalizeGoal(string(g)) {
	case WeightLoss:
		return row[1]
	case WeightGain:
		return row[0] + weightGainProteinBonus
	default:
		return row[0]
	}
}

// Protein returns the daily protein target in grams.
func Protein(weightKg float64, a ActivityLevel, g Goal) float64 {
	return weightKg * ProteinMultiplier(a, g)
}

// DefaultCalories returns the calorie estimate used when none is supplied.
func DefaultCalories(g Gender) float64 {
	if g == Male {
		return DefaultCaloriesMale
	}
	return DefaultCaloriesFemale
}

// Fiber returns the daily fiber target in grams: 14 g per 1000 kcal.
func Fiber(calories float64) float64 {
	return calories / 1000 * fiberPer1000Kcal
}

// Additive water offsets in ml.
var (
	waterActivityOffsets = map[ActivityLevel]float64{
		Sedentary:        0,
		LightlyActive:    300,
		ModeratelyActive: 500,
		VeryActive:       700,
		ExtremelyActive:  1000,
	}
	waterClimateOffsets = map[Climate]float64{
		Hot:  500,
		Cold: -200,
	}
)

// Multiplicative water factors. Levels and climates not listed use 1.0.
var (
	waterActivityFactors = map[ActivityLevel]float64{
		ModeratelyActive: 1.2,
		VeryActive:       1.4,
		ExtremelyActive:  1.4,
	}
	waterClimateFactors = map[Climate]float64{
		Hot:   1.2,
		Humid: 1.3,
	}
)

// WaterIntake returns the daily water target in ml under the given model.
//
// Additive:       35*kg + activity offset + climate offset, floored at 1500.
// Multiplicative: 35*kg * activity factor * climate factor.
func WaterIntake(weightKg float64, a ActivityLevel, c Climate, m WaterModel) float64 {
	a = NormalizeActivity(string(a))
	c = NormalizeClimate(string(c))
	base := weightKg * waterMlPerKg

	if m == WaterAdditive {
		ml := base + waterActivityOffsets[a] + waterClimateOffsets[c]
		return math.Max(ml, MinWaterAdditiveMl)
	}

	ml := base
	if f, ok := waterActivityFactors[a]; ok {
		ml *= f
	}
	if f, ok := waterClimateFactors[c]; ok {
		ml *= f
	}
	return ml
}

// WaterCups returns ml expressed in whole 250 ml cups.
func WaterCups(ml float64) float64 {
	return math.Round(ml / MlPerCup)
}
