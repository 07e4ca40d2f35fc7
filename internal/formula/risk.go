package formula

// DiabetesFactors are the inputs to the diabetes point score.
type DiabetesFactors struct {
	Age           float64
	BMI           float64
	FamilyHistory bool
	Hypertension  bool
	LowActivity   bool
}

// HypertensiveSystolic is the systolic pressure (mmHg) at or above which a
// reading counts as hypertension for the point score.
const HypertensiveSystolic = 140.0

// MaxDiabetesScore is the highest score with its own lookup entry.
const MaxDiabetesScore = 9

// diabetesRiskTable maps a point score to an estimated risk percentage.
var diabetesRiskTable = [MaxDiabetesScore + 1]float64{1, 2, 4, 8, 13, 21, 33, 50, 67, 80}

// diabetesRiskAboveMax is the risk reported for any score above MaxDiabetesScore.
const diabetesRiskAboveMax = 85.0

// DiabetesPoints sums the additive risk points:
//
//	age   <45: 0   45-54: 1   55-64: 2   >=65: 3
//	BMI   <25: 0   25-29.9: 1 >=30: 2
//	family history +2, hypertension +1, low activity +1
func DiabetesPoints(f DiabetesFactors) int {
	var pts int
	switch {
	case f.Age >= 65:
		pts += 3
	case f.Age >= 55:
		pts += 2
	case f.Age >= 45:
		pts++
	}
	switch {
	case f.BMI >= 30:
		pts += 2
	case f.BMI >= 25:
		pts++
	}
	if f.FamilyHistory {
		pts += 2
	}
	if f.Hypertension {
		pts++
	}
	if f.LowActivity {
		pts++
	}
	return pts
}

// DiabetesRiskPercent maps a point score to a risk percentage. Negative
// scores read as 0; scores above MaxDiabetesScore read as 85%.
func DiabetesRiskPercent(score int) float64 {
	if score < 0 {
		score = 0
	}
	if score > MaxDiabetesScore {
		return diabetesRiskAboveMax
	}
	return diabetesRiskTable[score]
}
