package formula

import "math"

// Floor clamps applied by the Local variant.
const (
	MinBodyFatPct  = 5.0
	MinLeanMassKg  = 30.0
	robinsonBaseIn = 60.0
)

// BMI returns weight / height² with height converted from cm to metres.
// A non-positive height yields NaN.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return math.NaN()
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// BodyFat estimates body fat percentage with the Deurenberg equation:
//
//	1.20*BMI + 0.23*age - 10.8*isMale - 5.4
//
// When clamp is set the result is floored at MinBodyFatPct.
func BodyFat(bmi float64, age float64, g Gender, clamp bool) float64 {
	var isMale float64
	if g == Male {
		isMale = 1
	}
	bf := 1.20*bmi + 0.23*age - 10.8*isMale - 5.4
	if clamp && bf < MinBodyFatPct {
		return MinBodyFatPct
	}
	return bf
}

// BMR returns the revised Harris-Benedict basal metabolic rate in kcal/day.
func BMR(weightKg, heightCm, age float64, g Gender) float64 {
	if g == Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age
}

// IdealWeight returns the Robinson ideal body weight in kg. Heights at or
// below five feet get the base weight.
func IdealWeight(heightCm float64, g Gender) float64 {
	heightIn := heightCm / CmPerInch
	base, perInch := 49.0, 1.7
	if g == Male {
		base, perInch = 52.0, 1.9
	}
	if heightIn <= robinsonBaseIn {
		return base
	}
	return base + perInch*(heightIn-robinsonBaseIn)
}

// LBM returns the Boer lean body mass in kg, floored at MinLeanMassKg when
// clamp is set.
func LBM(weightKg, heightCm float64, g Gender, clamp bool) float64 {
	var lbm float64
	if g == Male {
		lbm = 0.407*weightKg + 0.267*heightCm - 19.2
	} else {
		lbm = 0.252*weightKg + 0.473*heightCm - 48.3
	}
	if clamp && lbm < MinLeanMassKg {
		return MinLeanMassKg
	}
	return lbm
}

// BSA returns the Du Bois body surface area in m².
// Negative inputs yield NaN.
func BSA(weightKg, heightCm float64) float64 {
	if weightKg < 0 || heightCm < 0 {
		return math.NaN()
	}
	return 0.007184 * math.Pow(weightKg, 0.425) * math.Pow(heightCm, 0.725)
}
