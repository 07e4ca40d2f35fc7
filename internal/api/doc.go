// Package api implements the HTTP API of the healthcalc server.
//
// Server is a chi router with request id, real ip, slog request logging,
// panic recovery and CORS middleware. Routes:
//
//	GET    /api/v1/health           status, active variant, locales
//	GET    /api/v1/calculators      calculator ids with required/optional inputs
//	POST   /api/v1/evaluate/{id}    {inputs, locale, use_profile, remote} → Result
//	GET    /calculate/{path}        remote-compatible flat numeric payload
//	GET    /api/v1/profile          stored profile ({} when none)
//	PUT    /api/v1/profile          merge body over the stored profile
//	DELETE /api/v1/profile          clear the stored profile
//	GET    /metrics                 Prometheus text exposition
//	GET    /ws/profile              profile WebSocket hub
//
// Everything except /api/v1/health and /metrics sits behind the API-key
// middleware. Validation errors answer 400 with the localized message,
// remote failures 502 with "API request failed: ...", and an undefined
// /calculate result 422 with the localized reason.
package api
