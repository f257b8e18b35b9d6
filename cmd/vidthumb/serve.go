package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidthumb/internal/imageio"
	"vidthumb/internal/logging"
	"vidthumb/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	var useVips bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the thumbnail HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useVips {
				if err := imageio.InitVips(); err != nil {
					logging.Warn("vips unavailable, using fallback decoder: %v", err)
				} else {
					defer imageio.ShutdownVips()
				}
			}

			srv := server.New(server.Config{
				Addr:    addr,
				Version: appVersion,
			})

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Info("received %s, shutting down", sig)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&useVips, "vips", false, "use libvips for watermark image decoding")
	return cmd
}
