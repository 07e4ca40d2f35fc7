// Package engine maps calculator ids onto the formulas of package formula
// and turns their values into display-ready results.
//
// calculators.go holds the registry: for every calculator its id, the path
// it is served under by the remote calculator API, its required inputs and
// the payload fields its value may arrive in. Evaluation runs in two steps.
// compute validates the Inputs and produces the primary value; finish bands
// that value and writes the localized interpretation. finish runs for values
// computed locally and for values received from a remote Fetcher, so both
// sources are interpreted the same way.
//
// Three outcomes are kept apart. A *ValidationError means the inputs could
// not be evaluated. A Result with OutcomeUndefined means the formula has no
// finite value for them. A *RemoteError means the remote source failed.
//
// The active formula.Variant can be swapped at runtime with SetVariant.
package engine
