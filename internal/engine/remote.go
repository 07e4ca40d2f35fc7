package engine

import (
	"context"

	"github.com/healthcalc/healthcalc/internal/i18n"
)

// Fetcher retrieves the flat numeric payload of a remote calculator.
// *remote.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params map[string]string) (map[string]float64, error)
}

// EvaluateRemote delegates the computation of id to f and interprets the
// returned value locally. Calculators without a remote endpoint are
// evaluated locally.
//
// Errors are a *ValidationError (missing inputs, checked before any request
// is made) or a *RemoteError carrying the single localized message to show.
func (e *Engine) EvaluateRemote(ctx context.Context, f Fetcher, id string, in Inputs, l i18n.Locale) (Result, error) {
	c, ok := Lookup(id)
	if !ok {
		return Result{}, newValidationError(id, ErrUnknownCalculator, l)
	}
	if !c.Remote || f == nil {
		return e.Evaluate(id, in, l)
	}
	if err := c.checkRequired(in); err != nil {
		return Result{}, newValidationError(c.ID, err, l)
	}

	payload, err := f.Fetch(ctx, c.Path, c.params(in))
	if err != nil {
		return Result{}, newRemoteError(c.ID, err, l)
	}
	value, ok := c.pick(payload)
	if !ok {
		return Result{}, newRemoteError(c.ID, ErrRemotePayload, l)
	}

	v := e.Variant()
	r := newResult(c, v, SourceRemote)
	r.Value = value
	conclude(c, v, &r, in, l)
	if r.OK() {
		for detail, key := range c.aliases {
			if x, ok := payload[key]; ok && finite(x) {
				r.detail(detail, x)
			}
		}
	}
	return r, nil
}
