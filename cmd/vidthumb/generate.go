package main

import (
	"fmt"
	"os"

	"vidthumb/internal/imageio"
	"vidthumb/internal/logging"
	"vidthumb/internal/thumbnail"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	flags := &settingsFlags{}
	var useVips bool

	cmd := &cobra.Command{
		Use:   "generate <video>",
		Short: "Generate a thumbnail for a single video",
		Long: `Generate a thumbnail for a single video.

By default a single frame is extracted at the requested timestamp. With
--mode grid, frames are sampled across the video and composed into a
rows x columns contact sheet. A text or image watermark can be overlaid
on the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if useVips {
				if err := imageio.InitVips(); err != nil {
					logging.Warn("vips unavailable, using fallback decoder: %v", err)
				} else {
					defer imageio.ShutdownVips()
				}
			}

			gen := thumbnail.New(args[0])
			info, err := gen.Info()
			if err != nil {
				return err
			}

			printHeader("VIDEO")
			printLabel("File", "%s", info.Path)
			printLabel("Duration", "%s", formatDuration(info.Duration))
			printLabel("Resolution", "%s", info.Resolution())

			bar := newProgressBar("Generating")
			outPath, img, err := gen.Generate(p.Thumbnail, p.Watermark, func(percent int) {
				_ = bar.Set(percent)
			})
			if err != nil {
				fmt.Fprintln(os.Stderr)
				return err
			}
			_ = bar.Finish()

			bounds := img.Bounds()
			okColor.Printf("Saved %s (%dx%d)\n", outPath, bounds.Dx(), bounds.Dy())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&useVips, "vips", false, "use libvips for watermark image decoding")
	return cmd
}
