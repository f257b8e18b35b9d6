// Package video opens video files and exposes the two things the thumbnail
// pipeline needs from them: stream metadata (duration, dimensions, frame
// rate) and decoded frames at arbitrary timestamps.
//
// Metadata comes from ffprobe's JSON output; frames are extracted by running
// ffmpeg with an accurate seek and decoding the single PNG frame it writes
// to stdout. Both tools must be present on PATH.
package video
