// Package config loads and watches the server configuration file (config.yaml).
//
// Top-level types:
//   - Config{Server, Formula, Remote, Profile}: full config tree parsed from YAML
//   - ServerConfig: http_port, auth (apikey|none, key_env), cors origins,
//     ws_resync_interval
//   - FormulaConfig: variant (hub|local) and default_locale (en|zh)
//   - RemoteConfig: enabled, base_url, host, key_env and the calculators to
//     delegate; Key() resolves the API key from the environment
//   - ProfileConfig: backend (memory|file|sqlite|redis), path, storage key,
//     redis addr/db/password_env/prefix
//
// Load(path) reads the YAML file, applies defaults (port 8080, variant hub,
// locale en, memory profile under "healthCalcProfile"), then validates
// required fields and enums. Default() is the config used without a file.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. The server applies the formula
// section live; the other sections take effect on restart.
package config
