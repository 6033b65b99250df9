// Package config loads and validates the gateway configuration.
//
// Configuration is assembled from three sources, merged in order with
// dario.cat/mergo (later sources fill fields the earlier ones left zero):
// environment variables (caarlos0/env), command-line flags, and an optional
// JSON file whose path is taken from the first two sources.
//
// The resulting [StructuredConfig] is immutable after startup: it is built
// once in main and injected into the components that need it.
package config
