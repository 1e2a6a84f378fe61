// Package validation binds and validates request data.
//
// Path parameters are bound by Echo, free-form JSON object bodies are decoded
// by DecodeObject, and struct tags are checked with the `validator` library.
// Failures come back as *errs.HTTPError with field-level details.
package validation
