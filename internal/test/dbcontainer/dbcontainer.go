// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages.
// This packages facilitates creation of a temporary postgres:16
// podman container, migrating the schema of the asked services in it,
// and connecting to it, using a *postgres.Pool connection pool.
// It may be used in all integration-level test suites which require
// a real PostgreSQL DBMS server.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/migration"
	"github.com/stretchr/testify/assert"
)

// New starts a postgres container, connects to it, and migrates the
// schema of the given services (named as in migration.Services).
// With podman, DOCKER_HOST must point to its socket, like
// DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
// The timeout bounds the start up phase only, while ctx is also used
// to shut the container down by the returned deferred functions.
// The ok result is false if any step failed (and was reported on t).
func New(
	ctx context.Context, timeout time.Duration, t *testing.T,
	services ...string,
) (
	pg *sqltestutil.PostgresContainer,
	pool *postgres.Pool,
	dfrs []func(),
	ok bool,
) {
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	dbmsVer := "16"
	pg, err := sqltestutil.StartPostgresContainer(ctx2, dbmsVer)
	ok = assert.NoError(t, err, "failed to set up a test database")
	if !ok {
		return
	}
	dfrs = append(dfrs, func() {
		err := pg.Shutdown(ctx)
		assert.NoError(t, err, "failed to shutdown test database")
	})
	u := pg.ConnectionString()
	pool, err = connect(ctx2, u)
	if ok = assert.NoError(t, err, "cannot connect to test database"); !ok {
		return
	}
	dfrs = append(dfrs, func() {
		err := pool.Close()
		assert.NoError(t, err, "failed to close the connections pool")
	})
	for _, s := range services {
		err = migration.Up(u, s)
		if ok = assert.NoError(t, err, "failed to migrate %q", s); !ok {
			return
		}
	}
	return
}

// connect retries until the freshly started DBMS accepts connections
// or ctx expires.
func connect(ctx context.Context, u string) (*postgres.Pool, error) {
	for {
		pool, err := postgres.NewPool(ctx, u)
		if err == nil {
			return pool, nil
		}
		var pgErr *pgconn.PgError
		var netErr net.Error
		switch {
		case ctx.Err() != nil:
			return nil, err
		case errors.As(err, &pgErr) && pgErr.SQLState() == "57P03":
			// the database system is starting up
		case errors.As(err, &netErr):
		default:
			return nil, err
		}
		time.Sleep(100 * time.Millisecond)
	}
}
