// Package profile persists the user's baseline measurements and uses them to
// pre-populate calculator inputs.
//
// A Profile is a partially filled record {age, gender, height, weight, waist,
// activity}; every field is optional. The Store keeps exactly one profile as a
// JSON blob under a fixed key (default "healthCalcProfile") in a KV backend:
//
//   - memory: process-local map (default)
//   - file:   a JSON document on disk, written atomically
//   - sqlite: a kv table in a SQLite database (mattn/go-sqlite3, WAL mode)
//   - redis:  the key <prefix>:<key> in Redis (go-redis/v9)
//
// Load returns an empty Profile when nothing is stored. Save shallow-merges
// the update over the stored profile: set fields overwrite, unset fields are
// preserved. Clear removes the record. Subscribers registered with Subscribe
// are called after every Save and Clear; the WebSocket hub uses this to push
// changes to open pages.
package profile
