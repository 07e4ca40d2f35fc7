package formula

import (
	"math"
	"testing"
)

func TestQTc(t *testing.T) {
	tests := []struct {
		name      string
		qt, hr    float64
		viaMillis bool
		want      float64
	}{
		{"hr 60 leaves qt unchanged", 400, 60, false, 400},
		{"hr 75", 400, 75, false, 447.21359549995793},
		{"hr 75 via millis", 400, 75, true, 447.21359549995793},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := QTc(tc.qt, tc.hr, tc.viaMillis); !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("QTc = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQTc_ZeroHeartRate(t *testing.T) {
	for _, viaMillis := range []bool{false, true} {
		if got := QTc(400, 0, viaMillis); !math.IsNaN(got) {
			t.Errorf("QTc(400, 0, %v) = %v, want NaN", viaMillis, got)
		}
	}
}

func TestABI(t *testing.T) {
	if got := ABI(120, 110); !almostEqual(got, 1.0909090909, 1e-9) {
		t.Errorf("ABI(120, 110) = %v, want 1.0909", got)
	}
	if got := ABI(120, 0); !math.IsNaN(got) {
		t.Errorf("ABI(120, 0) = %v, want NaN", got)
	}
}

func TestSixMinuteWalk(t *testing.T) {
	tests := []struct {
		name    string
		h, w, a float64
		g       Gender
		clamp   bool
		want    float64
	}{
		{"male", 175, 70, 28, Male, false, 751.99},
		{"female", 165, 60, 30, Female, false, 704.35},
		{"male low unclamped", 140, 130, 85, Male, false, 95.3},
		{"male low clamped", 140, 130, 85, Male, true, MinWalkDistanceM},
		{"female never clamped", 140, 130, 85, Female, true, 2.11*140 - 2.29*130 - 5.78*85 + 667},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SixMinuteWalk(tc.h, tc.w, tc.a, tc.g, tc.clamp)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("SixMinuteWalk = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWalkPercent(t *testing.T) {
	if got := WalkPercent(600, 750); !almostEqual(got, 80, 1e-9) {
		t.Errorf("WalkPercent(600, 750) = %v, want 80", got)
	}
	if got := WalkPercent(600, 0); !math.IsNaN(got) {
		t.Errorf("WalkPercent(600, 0) = %v, want NaN", got)
	}
}

func TestHeartRateZones_FiveZones(t *testing.T) {
	maxHR, zones := HeartRateZones(30, 60, Hub.ZoneBands)
	if maxHR != 190 {
		t.Fatalf("maxHR = %v, want 190", maxHR)
	}
	want := []Zone{
		{Key: "active_recovery", Lower: 0.5, Upper: 0.6, Min: 125, Max: 138},
		{Key: "aerobic_base", Lower: 0.6, Upper: 0.7, Min: 138, Max: 151},
		{Key: "aerobic_power", Lower: 0.7, Upper: 0.8, Min: 151, Max: 164},
		{Key: "lactate_threshold", Lower: 0.8, Upper: 0.9, Min: 164, Max: 177},
		{Key: "neuromuscular_power", Lower: 0.9, Upper: 1.0, Min: 177, Max: 190},
	}
	if len(zones) != len(want) {
		t.Fatalf("zones: got %d, want %d", len(zones), len(want))
	}
	for i := range want {
		if zones[i] != want[i] {
			t.Errorf("zone %d = %+v, want %+v", i, zones[i], want[i])
		}
	}
}

func TestHeartRateZones_FourZones(t *testing.T) {
	_, zones := HeartRateZones(30, 60, Local.ZoneBands)
	if len(zones) != 4 {
		t.Fatalf("zones: got %d, want 4", len(zones))
	}
	if zones[0].Key != "aerobic_base" || zones[0].Min != 138 {
		t.Errorf("first zone = %+v, want aerobic_base from 138", zones[0])
	}
	if last := zones[3]; last.Max != 190 {
		t.Errorf("last zone max = %d, want 190", last.Max)
	}
}

func TestHeartRateZones_TooFewBands(t *testing.T) {
	if _, zones := HeartRateZones(30, 60, []float64{0.5}); zones != nil {
		t.Errorf("zones = %v, want nil", zones)
	}
}
