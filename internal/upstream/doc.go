// Package upstream provides the transport layer for communicating with the
// upstream catalog/identity provider.
//
// The primary abstractions are [CatalogProvider] and [DirectoryProvider],
// which decouple the service layer from the provider's REST surface. The
// package ships a single HTTP implementation ([NewHTTPProvider]) backed by
// one shared resty client per process, safe for concurrent use.
//
// Upstream HTTP statuses are not interpreted here: every fetch returns the
// provider's status verbatim as a [Status] alongside the resolved payload,
// and callers decide what a non-success status means. Only transport
// failures and undecodable payloads surface as errors.
package upstream
