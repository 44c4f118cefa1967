// Package client is the HTTP client of the TaskKeeper API used by the CLI.
//
// APIClient wraps the REST endpoints (sign-up, sign-in, task CRUD and the
// completion switch). Failures are reported as *APIError carrying the
// server's error kind, or as ErrUnavailable when the server cannot be
// reached at all. Session persists the bearer token between CLI runs.
package client
