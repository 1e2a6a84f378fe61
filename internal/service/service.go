// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives the
// decoded request (path ids and the JSON body as a map), enforces the
// per-resource rules (required keys, immutable keys, parent lookups) and
// calls the repositories. Errors meant for the client are *errs.HTTPError.
package service
