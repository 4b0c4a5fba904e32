package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/livegit/pkg/cli/config"
	"github.com/m-mizutani/livegit/pkg/controller/server"
	"github.com/m-mizutani/livegit/pkg/infra"
	"github.com/m-mizutani/livegit/pkg/repository/memory"
	"github.com/m-mizutani/livegit/pkg/usecase"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
	"github.com/m-mizutani/livegit/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		secureCookie bool
		sessionTTL   time.Duration

		firestore config.Firestore
		fixture   config.Fixture
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("LIVEGIT_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "secure-cookie",
			Usage:       "Set Secure attribute on the session cookie",
			Sources:     cli.EnvVars("LIVEGIT_SECURE_COOKIE"),
			Destination: &secureCookie,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Drop sessions idle for this duration (0 keeps them forever)",
			Value:       memory.DefaultSessionTTL,
			Sources:     cli.EnvVars("LIVEGIT_SESSION_TTL"),
			Destination: &sessionTTL,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			firestore.Flags(),
			fixture.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("SecureCookie", secureCookie),
				slog.Any("SessionTTL", sessionTTL),
				slog.Any("Firestore", &firestore),
				slog.Any("Fixture", &fixture),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			activityRepo, err := newActivityRepository(ctx, &firestore, &fixture)
			if err != nil {
				return err
			}
			if closer, ok := activityRepo.(io.Closer); ok {
				defer safe.Close(closer)
			}

			infraOptions := []infra.Option{
				infra.WithActivityRepository(activityRepo),
				infra.WithSessionRepository(memory.NewSessionRepository(memory.WithSessionTTL(sessionTTL))),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				if closer, ok := bqClient.(io.Closer); ok {
					defer safe.Close(closer)
				}
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc, server.WithSecureCookie(secureCookie))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
