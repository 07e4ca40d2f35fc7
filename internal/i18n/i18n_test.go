package i18n

import (
	"math"
	"strings"
	"testing"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", English},
		{"zh", Chinese},
		{"zh-CN", Chinese},
		{"ZH_tw", Chinese},
		{"en-US", English},
		{"fr", English},
		{"", English},
	}
	for _, tc := range tests {
		if got := ParseLocale(tc.in); got != tc.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestT_Fallbacks(t *testing.T) {
	if got := T(Chinese, KeyRequiredFields); got != "请填写所有必填项" {
		t.Errorf("zh required fields = %q", got)
	}
	if got := T("fr", KeyRequiredFields); got != "Please fill all required fields" {
		t.Errorf("unknown locale should fall back to English, got %q", got)
	}
	if got := T(English, "no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key = %q, want the key", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(English, "interp.diabetes_risk", Fixed(4, 1))
	if got != "Your 7.5-year diabetes risk is 4.0%." {
		t.Errorf("Format = %q", got)
	}
	got = Format(Chinese, KeyAPIRequestFailed, "timeout")
	if got != "API请求失败：timeout" {
		t.Errorf("Format zh = %q", got)
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{22.857142857142858, 1, "22.9"},
		{1707.021, 0, "1707"},
		{2.5, 0, "3"},
		{1.84814, 2, "1.85"},
		{80, 1, "80.0"},
		{math.Inf(1), 1, "+Inf"},
		{math.Inf(-1), 0, "-Inf"},
		{math.NaN(), 2, "NaN"},
	}
	for _, tc := range tests {
		if got := Fixed(tc.v, tc.places); got != tc.want {
			t.Errorf("Fixed(%v, %d) = %q, want %q", tc.v, tc.places, got, tc.want)
		}
	}
}

// Every English key has a Chinese entry with the same number of verbs.
func TestTablesAligned(t *testing.T) {
	for key, s := range en {
		z, ok := zh[key]
		if !ok {
			t.Errorf("zh missing key %q", key)
			continue
		}
		if strings.Count(s, "%s") != strings.Count(z, "%s") {
			t.Errorf("key %q: verb count differs between en and zh", key)
		}
	}
	for key := range zh {
		if _, ok := en[key]; !ok {
			t.Errorf("en missing key %q", key)
		}
	}
}
