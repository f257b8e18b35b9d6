// Package server exposes thumbnail generation over HTTP: a JSON API for
// probing videos and generating thumbnails, a health endpoint, and
// Prometheus metrics. It is a thin synchronous front over the same
// pipeline the CLI uses; each request runs one generation to completion.
package server
