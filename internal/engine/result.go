package engine

import (
	"math"

	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

// Outcome distinguishes a usable result from one the formula cannot define
// for the given inputs.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeUndefined Outcome = "undefined"
)

// Result sources.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// Result is the outcome of one calculator evaluation, ready for display.
type Result struct {
	Calculator     string             `json:"calculator"`
	Outcome        Outcome            `json:"outcome"`
	Reason         string             `json:"reason,omitempty"`
	Value          float64            `json:"value"`
	Unit           string             `json:"unit,omitempty"`
	Category       string             `json:"category,omitempty"`
	CategoryLabel  string             `json:"category_label,omitempty"`
	Status         string             `json:"status,omitempty"`
	Interpretation string             `json:"interpretation,omitempty"`
	Details        map[string]float64 `json:"details,omitempty"`
	Zones          []ZoneResult       `json:"zones,omitempty"`
	Conversions    []Conversion       `json:"conversions,omitempty"`
	Source         string             `json:"source"`
	Variant        string             `json:"variant"`
}

// ZoneResult is one heart-rate training zone with its localized name.
type ZoneResult struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

// Conversion is a value expressed in one target unit. Display carries the
// feet-and-inches rendering for the ft target.
type Conversion struct {
	Unit    string  `json:"unit"`
	Value   float64 `json:"value"`
	Display string  `json:"display,omitempty"`
}

// OK reports whether r carries a defined value.
func (r *Result) OK() bool { return r.Outcome == OutcomeOK }

func (r *Result) detail(name string, v float64) {
	if r.Details == nil {
		r.Details = make(map[string]float64)
	}
	r.Details[name] = v
}

func (r *Result) band(b formula.Band, l i18n.Locale) {
	r.Category = b.Category
	r.Status = b.Status
	r.CategoryLabel = i18n.T(l, "category."+b.Category)
}

// markUndefined turns r into an undefined outcome and drops any partial output.
func (r *Result) markUndefined(l i18n.Locale) {
	r.Outcome = OutcomeUndefined
	r.Reason = i18n.T(l, i18n.KeyUndefined)
	r.Value = 0
	r.Category, r.CategoryLabel, r.Status, r.Interpretation = "", "", "", ""
	r.Details, r.Zones, r.Conversions = nil, nil, nil
}

// sanitize drops non-finite details so the result always encodes as JSON.
func (r *Result) sanitize() {
	for k, v := range r.Details {
		if !finite(v) {
			delete(r.Details, k)
		}
	}
}

func (r *Result) conversionsFinite() bool {
	for _, c := range r.Conversions {
		if !finite(c.Value) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
