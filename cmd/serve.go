package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kastheco/lacquer/log"
	"github.com/kastheco/lacquer/server"
)

// NewServeCmd returns the `lacquer serve` cobra command.
// It starts an HTTP server exposing the theme catalog.
func NewServeCmd(opts *globalOptions) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the theme HTTP server",
		Long:  "Start an HTTP server that exposes resolved themes, CSS variables and gradient samples over a read-only REST API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := opts.catalog()
			if err != nil {
				return fmt.Errorf("open theme catalog: %w", err)
			}

			handler := server.NewHandler(cat)
			addr := fmt.Sprintf("%s:%d", bind, port)

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			log.For("serve").Info("listening", "addr", "http://"+addr, "dirs", cat.Dirs())
			fmt.Fprintf(cmd.OutOrStdout(), "theme server listening on http://%s\n", addr)

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				fmt.Fprintln(cmd.OutOrStdout(), "\nshutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 7433, "port to listen on")
	cmd.Flags().StringVar(&bind, "bind", "127.0.0.1", "address to bind to")

	return cmd
}
