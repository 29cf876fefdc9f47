// Package observability exposes registry activity as Prometheus metrics.
package observability
