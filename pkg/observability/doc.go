// Package observability provides Prometheus collectors for the compile
// surfaces. The pure compiler core stays instrumentation-free; adapters
// observe around it.
package observability
