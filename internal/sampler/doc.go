// Package sampler plans frame timestamps across a video's duration and
// pulls the corresponding frames from a video source.
//
// Two planning strategies are provided: even spacing over interior
// intervals (avoiding the black or transitional frames that tend to sit at
// the exact start and end of a clip) and seeded uniform random sampling,
// always sorted so grid cells read in chronological order.
package sampler
