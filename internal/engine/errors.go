package engine

import (
	"errors"

	"github.com/healthcalc/healthcalc/internal/i18n"
)

// ErrRemotePayload is returned when a remote response lacks the result field.
var ErrRemotePayload = errors.New("engine: remote payload has no result field")

// ValidationError reports inputs that cannot be evaluated: an unknown
// calculator, or a required field that is missing or not usable. Error
// returns the localized message shown to the user.
type ValidationError struct {
	Calculator string
	Field      string
	Message    string
	Err        error
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(calc string, err error, l i18n.Locale) *ValidationError {
	ve := &ValidationError{Calculator: calc, Err: err}
	var fe *fieldError
	if errors.As(err, &fe) {
		ve.Field = fe.field
		ve.Err = fe.err
	}
	switch {
	case errors.Is(ve.Err, ErrUnknownCalculator):
		ve.Message = i18n.Format(l, i18n.KeyUnknownCalc, calc)
	case errors.Is(ve.Err, ErrInvalidInput):
		ve.Message = i18n.Format(l, i18n.KeyInvalidInput, ve.Field)
	default:
		ve.Message = i18n.T(l, i18n.KeyRequiredFields)
	}
	return ve
}

// RemoteError reports a failed remote calculation. Message is the single
// localized string surfaced to the user.
type RemoteError struct {
	Calculator string
	Message    string
	Err        error
}

func (e *RemoteError) Error() string { return e.Message }
func (e *RemoteError) Unwrap() error { return e.Err }

func newRemoteError(calc string, err error, l i18n.Locale) *RemoteError {
	return &RemoteError{
		Calculator: calc,
		Message:    i18n.Format(l, i18n.KeyAPIRequestFailed, err.Error()),
		Err:        err,
	}
}
