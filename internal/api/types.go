package api

import (
	"github.com/healthcalc/healthcalc/internal/engine"
)

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status        string   `json:"status"`
	Variant       string   `json:"variant"`
	DefaultLocale string   `json:"default_locale"`
	Locales       []string `json:"locales"`
	Remote        bool     `json:"remote"`
	Calculators   int      `json:"calculators"`
}

// CalculatorsResponse is the payload for GET /api/v1/calculators.
type CalculatorsResponse struct {
	Calculators []engine.Calculator `json:"calculators"`
}

// EvaluateRequest is the body of POST /api/v1/evaluate/{id}.
type EvaluateRequest struct {
	Inputs engine.Inputs `json:"inputs"`

	// Locale selects the display language: en | zh. Empty falls back to the
	// Accept-Language header, then to the configured default.
	Locale string `json:"locale,omitempty"`

	// UseProfile fills absent inputs from the stored profile.
	UseProfile bool `json:"use_profile,omitempty"`

	// Remote asks for the value to come from the remote calculator API when
	// the server delegates this calculator.
	Remote bool `json:"remote,omitempty"`
}

// EvaluateResponse is the payload for POST /api/v1/evaluate/{id}.
type EvaluateResponse struct {
	EvaluationID string `json:"evaluation_id"`
	engine.Result
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
