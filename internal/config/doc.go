// Package config loads, validates, and normalizes haikufind configuration.
//
// Configuration lives in a TOML file resolved from --config, then
// ~/.config/haikufind/config.toml, then ./haikufind.toml, falling back to
// defaults when no file exists. Load returns a fully normalized config:
// paths expanded, environment fallbacks applied, defaults filled in.
//
// The publisher bearer token is deliberately not validated at load time;
// scanning must work without credentials. The publisher constructor enforces
// it right before any network use.
package config
