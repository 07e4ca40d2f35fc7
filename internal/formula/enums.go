package formula

import "strings"

// Gender selects the sex-specific constants of a formula.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts "male"/"female" and their one-letter forms.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, true
	case "female", "f":
		return Female, true
	default:
		return "", false
	}
}

// ActivityLevel is the self-reported activity level used by the energy,
// protein and water formulas.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

// activityAliases maps the option values used by the different calculator
// forms onto the canonical levels.
var activityAliases = map[string]ActivityLevel{
	"sedentary":         Sedentary,
	"lightly_active":    LightlyActive,
	"light":             LightlyActive,
	"moderately_active": ModeratelyActive,
	"moderate":          ModeratelyActive,
	"very_active":       VeryActive,
	"active":            VeryActive,
	"high":              VeryActive,
	"intense":           VeryActive,
	"extremely_active":  ExtremelyActive,
	"extra_active":      ExtremelyActive,
	"athlete":           ExtremelyActive,
}

// NormalizeActivity maps s onto a canonical ActivityLevel. Unrecognised values
// are returned lower-cased so table lookups fall through to their defaults.
func NormalizeActivity(s string) ActivityLevel {
	key := strings.ToLower(strings.TrimSpace(s))
	if a, ok := activityAliases[key]; ok {
		return a
	}
	return ActivityLevel(key)
}

// Known reports whether a is one of the five canonical levels.
func (a ActivityLevel) Known() bool {
	switch a {
	case Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive:
		return true
	}
	return false
}

// Climate adjusts the water target.
type Climate string

const (
	Temperate Climate = "temperate"
	Hot       Climate = "hot"
	Cold      Climate = "cold"
	Humid     Climate = "humid"
)

// NormalizeClimate lower-cases s. Unknown climates carry no adjustment.
func NormalizeClimate(s string) Climate {
	return Climate(strings.ToLower(strings.TrimSpace(s)))
}

// Goal is the body-composition goal used by the nutrition formulas.
type Goal string

const (
	Maintenance Goal = "maintenance"
	WeightLoss  Goal = "weight_loss"
	WeightGain  Goal = "weight_gain"
)

// NormalizeGoal maps form values onto a Goal. Anything unrecognised is
// treated as maintenance.
func NormalizeGoal(s string) Goal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight_loss", "lose_weight", "fat_loss":
		return WeightLoss
	case "weight_gain", "gain_weight", "muscle_gain":
		return WeightGain
	default:
		return Maintenance
	}
}
