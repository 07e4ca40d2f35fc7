// Package metrics counts evaluations and failures and serves them in the
// Prometheus text exposition format.
//
// Families:
//
//	healthcalc_evaluations_total{calculator,outcome,source}   counter
//	healthcalc_validation_errors_total{calculator}           counter
//	healthcalc_remote_failures_total{calculator}             counter
//	healthcalc_profile_writes_total{op}                      counter
//	healthcalc_ws_clients                                    gauge
//
// Families are built as client_model MetricFamily messages on every scrape
// and encoded with expfmt, so the text output parses back with
// expfmt.TextParser.
package metrics
