// Package ws implements the profile WebSocket hub.
//
// Hub keeps open calculator pages in sync with the stored user profile. It
// subscribes to profile.Store changes and pushes the new profile to every
// connected client; it also resends the stored profile every interval
// (server.ws_resync_interval, default 30s) so a page that missed a message
// catches up.
//
// New(store, interval, allowedOrigins) creates a Hub.
// Hub.Run(ctx) starts the resync ticker and blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the stored
// profile immediately on connect, then streams changes.
//
// Message format sent to clients:
//
//	{
//	  "event": "profile",
//	  "data":  { /* same schema as GET /api/v1/profile */ }
//	}
//
// The endpoint is mounted at /ws/profile by the server.
package ws
