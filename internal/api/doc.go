// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the session service, translating HTTP concerns to Pokedex operations.
//
// Errors are reported as {"error": ..., "trace_id": ...} with the status
// chosen by MapErrorToStatusCode. Raw error text never reaches clients.
package api
