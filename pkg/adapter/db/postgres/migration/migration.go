// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migration creates and upgrades the database schema of each
// service. Every service owns one table (and its indices), named after the service in plural, and keeps
// its own migrations history in a separate versions table, so all
// services may share one database or use separate databases.
//
// The SQL files are embedded in the binary and are applied using the
// golang-migrate library.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// Services lists names of the services which own a database schema.
var Services = []string{"car", "component", "driver", "race"}

// Up applies all pending migrations of the service schema on the
// dbURL database. The dbURL may use the postgres or postgresql
// schemes. Having no pending migration is not an error.
func Up(dbURL, service string) error {
	m, err := newMigrate(dbURL, service)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating %s up: %w", service, err)
	}
	return nil
}

// Down reverts all migrations of the service schema, dropping its
// table and data.
func Down(dbURL, service string) error {
	m, err := newMigrate(dbURL, service)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating %s down: %w", service, err)
	}
	return nil
}

// Version returns the current schema version of the service and
// whether its last migration had failed half way.
// A zero version indicates that no migration has been applied yet.
func Version(dbURL, service string) (version uint, dirty bool, err error) {
	m, err := newMigrate(dbURL, service)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrate(dbURL, service string) (*migrate.Migrate, error) {
	if !slices.Contains(Services, service) {
		return nil, fmt.Errorf("unknown service: %q", service)
	}
	source, err := iofs.New(migrations, path.Join("migrations", service))
	if err != nil {
		return nil, fmt.Errorf("iofs.New: %w", err)
	}
	u, err := driverURL(dbURL, service)
	if err != nil {
		return nil, err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, u)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithSourceInstance: %w", err)
	}
	return m, nil
}

// driverURL converts the dbURL to a URL which is understood by the
// pgx/v5 driver of golang-migrate, selecting a per-service versions
// table.
func driverURL(dbURL, service string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("parsing database URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql", "pgx5":
	default:
		return "", fmt.Errorf("unsupported database scheme: %q", u.Scheme)
	}
	u.Scheme = "pgx5"
	q := u.Query()
	q.Set("x-migrations-table", "schema_migrations_"+service)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
