package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/wardrobe/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a local web API for the library",
		Long: `Starts a web API on this machine for uploading images, browsing and clearing
the library, and generating outfits.

Endpoints:
  GET    /api/library             list every category
  DELETE /api/library             clear the whole library
  GET    /api/library/{category}  list one category
  DELETE /api/library/{category}  clear one category
  POST   /api/items               multipart upload: file, category, size
  GET    /api/outfit              random outfit as JSON
  GET    /api/outfit.png          random outfit rendered as PNG`,
		Example: `  # Start server on the configured address (default 127.0.0.1:8888)
  wardrobe serve

  # Start server on a custom port
  wardrobe serve --addr 127.0.0.1:3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Server.Addr
			}

			handler := handlers.New(a.store, a.cfg.Renderer(), a.cfg.UploadsDir)
			server := &http.Server{
				Addr:              addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Wardrobe API available", "addr", addr, "url", "http://"+addr, "library", a.store.Path())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config, 127.0.0.1:8888)")

	return cmd
}
