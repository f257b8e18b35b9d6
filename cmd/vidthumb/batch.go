package main

import (
	"fmt"
	"os"
	"path/filepath"

	"vidthumb/internal/thumbnail"

	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	flags := &settingsFlags{}
	var outDir string
	var maxWorkers int

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Generate thumbnails for every video in a directory",
		Long: `Generate thumbnails for every video in a directory.

Videos are processed concurrently. Each output file takes the video's
base name with the configured output format's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			dir := args[0]
			results, err := thumbnail.GenerateBatch(dir, outDir, p.Thumbnail, p.Watermark, maxWorkers, func(r thumbnail.BatchResult) {
				name := filepath.Base(r.VideoPath)
				if r.Err != nil {
					failColor.Fprintf(os.Stderr, "  ✗ %s: %v\n", name, r.Err)
					return
				}
				okColor.Fprintf(os.Stderr, "  ✓ %s -> %s\n", name, r.OutputPath)
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			printHeader("SUMMARY")
			printLabel("Videos", "%d", len(results))
			printLabel("Succeeded", "%d", len(results)-failed)
			printLabel("Failed", "%d", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d videos failed", failed, len(results))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outDir, "out", "thumbnails", "output directory")
	cmd.Flags().IntVar(&maxWorkers, "workers", 0, "max concurrent videos (0 = auto)")
	return cmd
}
