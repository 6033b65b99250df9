// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware used by the
// REST API. Cross-cutting concerns such as authentication, request tracing,
// access logging, and request metrics are handled in this package before
// requests are delegated to the service layer.
//
// Handlers translate the status returned alongside every service result
// into the response code; only transport or decode failures surface as Go
// errors and those map to 502 Bad Gateway.
package http
