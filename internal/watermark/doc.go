// Package watermark renders text or image watermarks onto thumbnails.
//
// Placement is anchor-based: a named position maps to a fractional point on
// the base image, the overlay is centered on that point, and the center is
// then constrained so the overlay stays fully inside the canvas minus a
// fixed margin. Oversized overlays collapse to the image midpoint on the
// axis that does not fit, overflowing symmetrically instead of clipping on
// one side.
//
// Apply never mutates its input and never fails: missing assets, blank
// text, unloadable fonts, and unknown positions all resolve to documented
// fallbacks rather than errors.
package watermark
