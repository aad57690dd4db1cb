// Package middleware provides observability middleware for routefs
// services: request logging, Prometheus metrics, and OpenTelemetry
// tracing.
//
// All middleware here wraps http.Handler and sits above the request
// pipeline. It observes requests and never alters response content.
package middleware
