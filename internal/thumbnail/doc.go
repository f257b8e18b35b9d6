// Package thumbnail orchestrates thumbnail generation: it samples frames
// from a video, composes them (single frame or grid), applies a watermark,
// and writes the encoded result to disk.
//
// Each generation is synchronous and self-contained. The video is opened,
// used, and closed within the call, no state survives between calls, and
// progress is reported in-line through an optional callback. Callers that
// must not block put the call on their own goroutine or queue.
package thumbnail
