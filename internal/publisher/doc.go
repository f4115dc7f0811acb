// Package publisher posts composed haiku text to an external service.
//
// The HTTP implementation targets the X v2 statuses endpoint configured in
// config.toml and authenticates with a bearer token. When publishing is
// disabled a noop implementation is returned so callers can treat the absent
// publisher as a configuration state rather than a runtime failure. All
// remote failures carry services.ErrTransport; a missing token is a
// services.ErrConfiguration raised before any network attempt.
package publisher
