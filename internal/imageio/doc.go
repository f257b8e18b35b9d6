// Package imageio loads still images (watermark assets) with an optional
// libvips fast path. When vips is not initialized, decoding falls through to
// the pure-Go imaging stack, so the pipeline works without cgo support.
package imageio
