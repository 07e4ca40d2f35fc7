// Package auth provides authentication middleware for the healthcalc server.
//
// APIKey(mode, key) returns HTTP middleware that validates the API key sent
// in the X-API-Key header. Peer hubs using this server as their remote
// calculator API send X-RapidAPI-Key instead, which is accepted too.
// Browsers cannot set headers on a WebSocket handshake, so the api_key query
// parameter is also checked.
//
// When mode != "apikey" or key == "", all requests pass through (useful for
// local development with auth disabled). A missing or incorrect key is
// answered with 401 immediately.
package auth
