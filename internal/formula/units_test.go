package formula

import (
	"errors"
	"testing"
)

func TestRoundTrips(t *testing.T) {
	values := []float64{0, 0.5, 1, 3.2, 70, 175, 1234.5678}
	pairs := []struct {
		name string
		fwd  func(float64) float64
		back func(float64) float64
	}{
		{"kg/lb", KgToLb, LbToKg},
		{"kg/stone", KgToStone, StoneToKg},
		{"lb/stone", LbToStone, StoneToLb},
		{"cm/in", CmToIn, InToCm},
		{"cm/m", CmToM, MToCm},
		{"in/ft", InToFt, FtToIn},
	}
	for _, p := range pairs {
		for _, v := range values {
			if got := p.back(p.fwd(v)); !almostEqual(got, v, 1e-6) {
				t.Errorf("%s round trip of %v = %v", p.name, v, got)
			}
		}
	}
	for _, v := range values {
		for _, f := range []float64{Hub.BloodSugarFactor, Local.BloodSugarFactor, CholesterolFactor} {
			if got := MmolLToMgDL(MgDLToMmolL(v, f), f); !almostEqual(got, v, 1e-6) {
				t.Errorf("mg/dL round trip of %v with factor %v = %v", v, f, got)
			}
		}
	}
}

func TestBloodSugarFactors(t *testing.T) {
	if got := MgDLToMmolL(100, Hub.BloodSugarFactor); !almostEqual(got, 5.550621669626999, 1e-9) {
		t.Errorf("hub 100 mg/dL = %v mmol/L", got)
	}
	if got := MgDLToMmolL(100, Local.BloodSugarFactor); !almostEqual(got, 5.55000555000555, 1e-9) {
		t.Errorf("local 100 mg/dL = %v mmol/L", got)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to Unit
		want     float64
	}{
		{"kg to lb", 70, Kilogram, Pound, 154.3234},
		{"lb to kg", 154.3234, Pound, Kilogram, 70},
		{"kg to stone", 70, Kilogram, Stone, 11.02311},
		{"stone to lb", 10, Stone, Pound, 140},
		{"cm to in", 254, Centimeter, Inch, 100},
		{"m to cm", 1.75, Meter, Centimeter, 175},
		{"ft to cm", 6, Foot, Centimeter, 182.88},
		{"cm to ft", 182.88, Centimeter, Foot, 6},
		{"identity", 42, Inch, Inch, 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.v, tc.from, tc.to)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if !almostEqual(got, tc.want, 1e-6) {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tc.v, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	if _, err := Convert(1, Kilogram, Centimeter); !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("kg to cm: err = %v, want ErrIncompatibleUnits", err)
	}
	if _, err := Convert(1, "parsec", Centimeter); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("parsec: err = %v, want ErrUnknownUnit", err)
	}
	if _, err := Convert(1, MgPerDL, MmolPerL); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("glucose units are not convertible by Convert: err = %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"KG": Kilogram, "lbs": Pound, "st": Stone, "feet": Foot, "mg/dL": MgPerDL, "mmol/l": MmolPerL,
	} {
		got, ok := ParseUnit(in)
		if !ok || got != want {
			t.Errorf("ParseUnit(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseUnit("furlong"); ok {
		t.Error("ParseUnit(furlong) should fail")
	}
}

func TestFeetInchesString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{69, `5'9"`},
		{CmToIn(175), `5'9"`},
		{71.6, `6'0"`},
		{60, `5'0"`},
	}
	for _, tc := range tests {
		if got := FeetInchesString(tc.in); got != tc.want {
			t.Errorf("FeetInchesString(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
