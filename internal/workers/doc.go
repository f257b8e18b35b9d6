// Package workers sizes worker pools from GOMAXPROCS rather than
// runtime.NumCPU, so batch generation respects container CPU limits.
// The VIDTHUMB_WORKERS environment variable overrides the calculation.
package workers
