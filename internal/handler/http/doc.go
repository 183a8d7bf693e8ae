// Package http contains the HTTP transport layer of the volna backend:
// the chi router, the registration and music proxy handlers, the CORS,
// logging and trace-id middleware, and the mapping of service-layer errors
// to HTTP statuses and user-facing messages.
package http
