// Package handler is the HTTP layer of the API.
//
// Each resource handler binds its request (path params plus the JSON object
// body), calls the service layer and returns the serialized representation.
// Errors are returned as is; the global error handler renders them.
package handler
