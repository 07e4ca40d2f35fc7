package formula

import "testing"

func TestDiabetesPoints(t *testing.T) {
	tests := []struct {
		name string
		f    DiabetesFactors
		want int
	}{
		{"young lean none", DiabetesFactors{Age: 30, BMI: 22}, 0},
		{"age 45 boundary", DiabetesFactors{Age: 45, BMI: 22}, 1},
		{"age 55 boundary", DiabetesFactors{Age: 55, BMI: 22}, 2},
		{"age 65 boundary", DiabetesFactors{Age: 65, BMI: 22}, 3},
		{"bmi 25 boundary", DiabetesFactors{Age: 30, BMI: 25}, 1},
		{"bmi 30 boundary", DiabetesFactors{Age: 30, BMI: 30}, 2},
		{"flags only", DiabetesFactors{Age: 30, BMI: 22, FamilyHistory: true, Hypertension: true, LowActivity: true}, 4},
		{"everything", DiabetesFactors{Age: 70, BMI: 35, FamilyHistory: true, Hypertension: true, LowActivity: true}, MaxDiabetesScore},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiabetesPoints(tc.f); got != tc.want {
				t.Errorf("DiabetesPoints = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDiabetesRiskPercent_Table(t *testing.T) {
	want := []float64{1, 2, 4, 8, 13, 21, 33, 50, 67, 80}
	for score, pct := range want {
		if got := DiabetesRiskPercent(score); got != pct {
			t.Errorf("DiabetesRiskPercent(%d) = %v, want %v", score, got, pct)
		}
	}
}

func TestDiabetesRiskPercent_Monotonic(t *testing.T) {
	prev := DiabetesRiskPercent(0)
	for s := 1; s <= 20; s++ {
		cur := DiabetesRiskPercent(s)
		if cur < prev {
			t.Fatalf("risk decreased at score %d: %v < %v", s, cur, prev)
		}
		prev = cur
	}
}

func TestDiabetesRiskPercent_OutOfRange(t *testing.T) {
	for _, s := range []int{10, 11, 50} {
		if got := DiabetesRiskPercent(s); got != 85 {
			t.Errorf("DiabetesRiskPercent(%d) = %v, want 85", s, got)
		}
	}
	if got := DiabetesRiskPercent(-3); got != 1 {
		t.Errorf("DiabetesRiskPercent(-3) = %v, want 1", got)
	}
}
