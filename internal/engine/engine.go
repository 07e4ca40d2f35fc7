package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

// Engine evaluates calculators under the active formula variant.
//
// All exported methods are safe for concurrent use.
type Engine struct {
	mu      sync.RWMutex
	variant formula.Variant
}

// New returns an Engine evaluating under variant v.
func New(v formula.Variant) *Engine {
	return &Engine{variant: v}
}

// Variant returns the active variant.
func (e *Engine) Variant() formula.Variant {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.variant
}

// SetVariant swaps the active variant. Evaluations already running keep the
// variant they started with.
func (e *Engine) SetVariant(v formula.Variant) {
	e.mu.Lock()
	old := e.variant
	e.variant = v
	e.mu.Unlock()
	if old.Name != v.Name {
		slog.Info("engine: variant changed", "from", old.Name, "to", v.Name)
	}
}

// Evaluate runs calculator id over in and interprets the value in locale l.
//
// The error is always a *ValidationError: the calculator is unknown or a
// required input is missing or unusable. A value the formula cannot define
// (division by zero, a non-finite result) is not an error; it comes back as
// a Result with Outcome OutcomeUndefined.
func (e *Engine) Evaluate(id string, in Inputs, l i18n.Locale) (Result, error) {
	c, ok := Lookup(id)
	if !ok {
		return Result{}, newValidationError(id, ErrUnknownCalculator, l)
	}
	if err := c.checkRequired(in); err != nil {
		return Result{}, newValidationError(c.ID, err, l)
	}

	v := e.Variant()
	r := newResult(c, v, SourceLocal)
	if err := c.compute(v, in, &r); err != nil {
		return Result{}, newValidationError(c.ID, err, l)
	}
	conclude(c, v, &r, in, l)
	return r, nil
}

// Payload evaluates id and flattens the result into the numeric payload
// served to remote clients: the primary value under the calculator's
// payload key, plus details, zone bounds and conversions.
func (e *Engine) Payload(id string, in Inputs, l i18n.Locale) (map[string]float64, Result, error) {
	r, err := e.Evaluate(id, in, l)
	if err != nil || !r.OK() {
		return nil, r, err
	}
	c, _ := Lookup(id)

	out := map[string]float64{c.PayloadKey(): r.Value}
	for k, v := range r.Details {
		if alias, ok := c.aliases[k]; ok {
			k = alias
		}
		out[k] = v
	}
	for i, z := range r.Zones {
		out[fmt.Sprintf("zone_%d_min", i+1)] = float64(z.Min)
		out[fmt.Sprintf("zone_%d_max", i+1)] = float64(z.Max)
	}
	for _, cv := range r.Conversions {
		out[cv.Unit] = cv.Value
	}
	return out, r, nil
}

func newResult(c *Calculator, v formula.Variant, source string) Result {
	return Result{
		Calculator: c.ID,
		Outcome:    OutcomeOK,
		Unit:       c.Unit,
		Source:     source,
		Variant:    v.Name,
	}
}

// conclude interprets r.Value, or marks r undefined when the value or any
// conversion is not finite.
func conclude(c *Calculator, v formula.Variant, r *Result, in Inputs, l i18n.Locale) {
	if !finite(r.Value) || !r.conversionsFinite() {
		r.markUndefined(l)
		return
	}
	c.finish(v, r, in, l)
	r.sanitize()
}
