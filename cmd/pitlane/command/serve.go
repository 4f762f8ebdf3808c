// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/pitlane/pkg/adapter/config"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/migration"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/routes"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/spf13/cobra"
)

var migrateFirst bool

var serveCmd = &cobra.Command{
	Use:   "serve {car|component|driver|race}",
	Short: "Start the web server of one service",
	Long: `Start the web server of one service.
The server listens on the gin.listen address of the configuration file
and stops gracefully after receiving an interrupt or terminate signal.
With --migrate, pending database migrations of the service are applied
before the server starts.`,
	ValidArgs: routes.Services,
	Args:      serviceArg,
	RunE:      startWebServer,
}

func startWebServer(_ *cobra.Command, args []string) error {
	service := args[0]
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if migrateFirst {
		if err = migrateUp(ctx, c, service); err != nil {
			return err
		}
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	e := c.Gin.NewEngine()
	if err = routes.Register(e, p, c, service); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := &http.Server{
		Addr:              c.Gin.Listen,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "serving",
			slog.String("service", service),
			slog.String("listen", c.Gin.Listen),
		)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("running web server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down", slog.String("service", service))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return nil
}

func migrateUp(ctx context.Context, c *config.Config, service string) error {
	u, err := c.Database.URL()
	if err != nil {
		return fmt.Errorf("finding database URL: %w", err)
	}
	if err = migration.Up(u, service); err != nil {
		return err
	}
	v, _, err := migration.Version(u, service)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	log.Info(ctx, "database schema is up to date",
		slog.String("service", service), slog.Uint64("version", uint64(v)),
	)
	return nil
}

func init() {
	serveCmd.Flags().BoolVar(
		&migrateFirst, "migrate", false, "apply pending migrations first",
	)
	rootCmd.AddCommand(serveCmd)
}
