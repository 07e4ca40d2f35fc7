package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/healthcalc/healthcalc/internal/engine"
)

// Profile is a user's baseline measurements. Nil fields are unset.
type Profile struct {
	Age      *float64 `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Waist    *float64 `json:"waist,omitempty"`
	Activity *string  `json:"activity,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p Profile) IsEmpty() bool {
	return p.Age == nil && p.Gender == nil && p.Height == nil &&
		p.Weight == nil && p.Waist == nil && p.Activity == nil
}

// Merge returns base with every field set in update copied over it.
func Merge(base, update Profile) Profile {
	out := base
	if update.Age != nil {
		out.Age = update.Age
	}
	if update.Gender != nil {
		out.Gender = update.Gender
	}
	if update.Height != nil {
		out.Height = update.Height
	}
	if update.Weight != nil {
		out.Weight = update.Weight
	}
	if update.Waist != nil {
		out.Waist = update.Waist
	}
	if update.Activity != nil {
		out.Activity = update.Activity
	}
	return out
}

// AutoFill returns a copy of in with the profile's fields filled into the
// inputs that are absent. Values already present are never overwritten.
// The profile's activity fills the activity_level input.
func (p Profile) AutoFill(in engine.Inputs) engine.Inputs {
	out := in.Clone()
	fillNumber(out, "age", p.Age)
	fillText(out, "gender", p.Gender)
	fillNumber(out, "height", p.Height)
	fillNumber(out, "weight", p.Weight)
	fillNumber(out, "waist", p.Waist)
	fillText(out, "activity_level", p.Activity)
	return out
}

func fillNumber(in engine.Inputs, key string, v *float64) {
	if v != nil && !in.Has(key) {
		in[key] = *v
	}
}

func fillText(in engine.Inputs, key string, v *string) {
	if v != nil && *v != "" && !in.Has(key) {
		in[key] = *v
	}
}

// Float returns a pointer to v, for building a Profile literal.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s, for building a Profile literal.
func String(s string) *string { return &s }

// UnmarshalJSON accepts numbers either as JSON numbers or as numeric strings,
// the way form fields are saved by the browser page. Empty strings and nulls
// leave a field unset; unknown keys are ignored.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw struct {
		Age      flexNumber `json:"age"`
		Gender   *string    `json:"gender"`
		Height   flexNumber `json:"height"`
		Weight   flexNumber `json:"weight"`
		Waist    flexNumber `json:"waist"`
		Activity *string    `json:"activity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile{
		Age:      raw.Age.v,
		Gender:   nonEmpty(raw.Gender),
		Height:   raw.Height.v,
		Weight:   raw.Weight.v,
		Waist:    raw.Waist.v,
		Activity: nonEmpty(raw.Activity),
	}
	return nil
}

// flexNumber decodes a JSON number or numeric string.
type flexNumber struct{ v *float64 }

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if n == "" {
			return nil
		}
		v, err := n.Float64()
		if err != nil {
			return err
		}
		f.v = &v
		return nil
	}
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("profile: expected number, got %s", data)
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return fmt.Errorf("profile: invalid number %q", *s)
	}
	f.v = &v
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
