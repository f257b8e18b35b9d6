// Command vidthumb generates thumbnail images from video files: a single
// extracted frame or a grid of sampled frames, with an optional text or
// image watermark. It can run one-shot, over a directory of videos, or as
// an HTTP service.
package main
