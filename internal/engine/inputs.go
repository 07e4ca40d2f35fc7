package engine

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors wrapped by ValidationError.
var (
	ErrUnknownCalculator = errors.New("engine: unknown calculator")
	ErrMissingInput      = errors.New("engine: missing input")
	ErrInvalidInput      = errors.New("engine: invalid input")
)

// Inputs is the set of scalar fields supplied to one evaluation, keyed by the
// remote API parameter names (height, weight, activity_level, ...). Values
// may be numbers, numeric strings or booleans.
type Inputs map[string]any

// fieldError ties a validation failure to the offending field.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return e.err.Error() + ": " + e.field }
func (e *fieldError) Unwrap() error { return e.err }

func missing(field string) error { return &fieldError{field: field, err: ErrMissingInput} }
func invalid(field string) error { return &fieldError{field: field, err: ErrInvalidInput} }

// Has reports whether key is present with a non-empty value.
func (in Inputs) Has(key string) bool {
	_, ok := in.raw(key)
	return ok
}

func (in Inputs) raw(key string) (any, bool) {
	v, ok := in[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// Number returns key as a finite float64.
func (in Inputs) Number(key string) (float64, error) {
	v, ok := in.raw(key)
	if !ok {
		return 0, missing(key)
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		p, err := n.Float64()
		if err != nil {
			return 0, invalid(key)
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, invalid(key)
		}
		f = p
	default:
		return 0, invalid(key)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(key)
	}
	return f, nil
}

// NumberOr returns key as a number, or def when key is absent.
func (in Inputs) NumberOr(key string, def float64) (float64, error) {
	if !in.Has(key) {
		return def, nil
	}
	return in.Number(key)
}

// Positive returns key as a number greater than zero.
func (in Inputs) Positive(key string) (float64, error) {
	f, err := in.Number(key)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, invalid(key)
	}
	return f, nil
}

// NonNegative returns key as a number greater than or equal to zero.
func (in Inputs) NonNegative(key string) (float64, error) {
	f, err := in.Number(key)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, invalid(key)
	}
	return f, nil
}

// Text returns key as a trimmed string, or "" when absent. Numbers are
// formatted without trailing zeros.
func (in Inputs) Text(key string) string {
	v, ok := in.raw(key)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// Flag returns key as a boolean. Absent keys read as false. Accepts booleans,
// yes/no, true/false, 1/0 and numbers (non-zero is true).
func (in Inputs) Flag(key string) (bool, error) {
	v, ok := in.raw(key)
	if !ok {
		return false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "y", "true", "1", "on":
			return true, nil
		case "no", "n", "false", "0", "off":
			return false, nil
		}
		return false, invalid(key)
	}
	f, err := in.Number(key)
	if err != nil {
		return false, invalid(key)
	}
	return f != 0, nil
}

// Clone returns a shallow copy of in.
func (in Inputs) Clone() Inputs {
	out := make(Inputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
