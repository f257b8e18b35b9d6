package main

import (
	"vidthumb/internal/video"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <video>",
		Short: "Print stream metadata for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := video.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			info := src.Info()
			printHeader("VIDEO")
			printLabel("File", "%s", info.Path)
			printLabel("Duration", "%s", formatDuration(info.Duration))
			printLabel("Resolution", "%s", info.Resolution())
			printLabel("FPS", "%.3f", info.FPS)
			return nil
		},
	}
}
