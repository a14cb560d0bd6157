package cmds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wowcpe/internal/app/router"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var httpConfig HttpConfig

type HttpConfig struct {
	Port     int           `json:"port"`
	Interval time.Duration `json:"interval"`
}

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP service that answers lookups as JSON and exposes metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.L()

			// Validate the config file.
			if err := conf.Validate(); err != nil {
				return err
			}

			// A refresh storm helps nobody.
			if httpConfig.Interval < time.Minute {
				return errors.New("interval cannot be less than 1 minute")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Create the HTTP service.
			r, err := router.NewEngine(ctx, conf, newPageCache(), httpConfig.Interval)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", httpConfig.Port),
				Handler: r,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logger.Sugar().Infof("The HTTP service is listening on %s.", srv.Addr)

			select {
			case err = <-errCh:
				return err
			case <-ctx.Done():
			}

			// Let in-flight lookups drain before the process goes away.
			logger.Info("Shutting down the HTTP service.")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	serveCmd.Flags().IntVarP(&httpConfig.Port, "port", "p", 8080, "Listen port of the HTTP service.")
	serveCmd.Flags().DurationVarP(&httpConfig.Interval, "interval", "i", 10*time.Minute, "How often the playing-now cache refreshes, e.g. `10m` or 1h.")

	return serveCmd
}
