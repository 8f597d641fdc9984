// Package otel reserves an OpenTelemetry observer plugin for the pool
// library. It currently ships a no-op implementation so callers can wire
// the dependency without pulling in an SDK.
package otel
