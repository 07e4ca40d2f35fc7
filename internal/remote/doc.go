// Package remote is the HTTP client for the hosted calculator API.
//
// A Client issues GET {base_url}/calculate/{path}?{params} with the
// X-RapidAPI-Key and X-RapidAPI-Host headers and decodes the flat JSON
// response into map[string]float64. Numeric strings are parsed; any other
// value is dropped. There is no retry: a failed call is reported once to the
// caller, which turns it into a localized "API request failed" message.
//
// *Client satisfies engine.Fetcher.
package remote
