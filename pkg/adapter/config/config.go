// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows pitlane to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// Some settings may be overridden by environment variables having
// the PITLANE_ prefix, e.g., PITLANE_DATABASE_HOST. A .env file in
// the working directory is loaded into the environment beforehand.
// The parsed and validated configurations are passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items).
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/momeni/pitlane/pkg/adapter/config/settings"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/adapter/restclient"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
	"github.com/momeni/pitlane/pkg/core/usecase/racesuc"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the common prefix of all environment variables which
// may override the configuration file settings.
const EnvPrefix = "PITLANE_"

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database  Database  `yaml:"database" envPrefix:"DATABASE_"`
	Gin       Gin       `yaml:"gin" envPrefix:"GIN_"`
	Upstreams Upstreams `yaml:"upstreams" envPrefix:"UPSTREAMS_"`
	Usecases  Usecases  `yaml:"usecases" envPrefix:"USECASES_"`
}

// Database contains the database related configuration settings.
type Database struct {
	Host    string `yaml:"host" env:"HOST"` // DBMS domain name or IP
	Port    int    `yaml:"port" env:"PORT"` // DBMS port number
	Name    string `yaml:"name" env:"NAME"` // database name, like pitlane
	User    string `yaml:"user" env:"USER"` // role name, like pitlane
	PassDir string `yaml:"pass-dir" env:"PASS_DIR"`

	// Password, when set, is used instead of the .pgpass file.
	// It is only taken from the environment variables, so it will
	// not be kept in the configuration files.
	Password string `yaml:"-" env:"PASSWORD"`
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
func (d Database) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	u, err := d.URL()
	if err != nil {
		return nil, err
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("connecting to %q database: %w", d.Name, err)
	}
	return p, nil
}

// URL returns the database connection URL. The password is taken from
// the Password field, or from the .pgpass file in the PassDir folder
// if Password is empty.
func (d Database) URL() (string, error) {
	if d.Password != "" {
		return d.connectionURL(d.Password), nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	u, err := d.ConnectionURL(path)
	if err != nil {
		return "", fmt.Errorf("using %q pass-file: %w", path, err)
	}
	return u, nil
}

// ConnectionURL returns the database connection URL embedding the host,
// port, role name, database name, and password value. These items are
// directly taken from the `d` settings, but the password value which is
// read from the given `path` file. Returned URL has the postgresql
// scheme. The `path` file may contain empty or `#`-commented lines in
// addition to the password specifying lines which should conform with
// the pgpass files format with lines like this:
//
//	host:port:dbname:role:password
//
// If the `path` file could be read and a password for the d.User role
// could be identified, a URL and a nil error will be returned.
func (d Database) ConnectionURL(path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.User)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line")
	}
	return d.connectionURL(pass), nil
}

func (d Database) connectionURL(pass string) string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String()
}

// ValidateAndNormalize validates the database settings and fills the
// default port number.
func (d *Database) ValidateAndNormalize() error {
	settings.DefaultZero(&d.Port, 5432)
	switch {
	case d.Host == "":
		return errors.New("database host is required")
	case d.Name == "":
		return errors.New("database name is required")
	case d.User == "":
		return errors.New("database user is required")
	case d.Port < 0 || d.Port > 65535:
		return fmt.Errorf("invalid database port: %d", d.Port)
	}
	return nil
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool  `yaml:"logger" env:"LOGGER"`     // gin access logs
	Recovery *bool  `yaml:"recovery" env:"RECOVERY"` // panic recovery
	Listen   string `yaml:"listen" env:"LISTEN"`     // like :8080
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Upstreams contains the base URLs of the sibling services, which are
// called in order to validate or resolve the cross-service references.
// Each service only needs the URLs of those services that it refers
// to, e.g., the driver service needs none of them.
type Upstreams struct {
	Car       string `yaml:"car" env:"CAR"`             // like http://car:8080
	Driver    string `yaml:"driver" env:"DRIVER"`       // driver service URL
	Component string `yaml:"component" env:"COMPONENT"` // component service URL

	// Timeout of each request to the sibling services.
	Timeout *settings.Duration `yaml:"timeout" env:"TIMEOUT"`
}

func (u Upstreams) restConfig(baseURL string) restclient.Config {
	return restclient.Config{
		BaseURL: baseURL,
		Timeout: u.Timeout.Std(),
	}
}

// Cars creates a resolver for the cars of the car service.
func (u Upstreams) Cars() (repo.Resolver[model.Car], error) {
	r, err := restclient.NewCars(u.restConfig(u.Car))
	if err != nil {
		return nil, fmt.Errorf("car upstream: %w", err)
	}
	return r, nil
}

// Drivers creates a resolver for the drivers of the driver service.
func (u Upstreams) Drivers() (repo.Resolver[model.Driver], error) {
	r, err := restclient.NewDrivers(u.restConfig(u.Driver))
	if err != nil {
		return nil, fmt.Errorf("driver upstream: %w", err)
	}
	return r, nil
}

// Components creates a resolver for the components of the component
// service.
func (u Upstreams) Components() (repo.Resolver[model.Component], error) {
	r, err := restclient.NewComponents(u.restConfig(u.Component))
	if err != nil {
		return nil, fmt.Errorf("component upstream: %w", err)
	}
	return r, nil
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Races Races `yaml:"races" envPrefix:"RACES_"`
}

// Races contains the configuration settings for the races use cases.
type Races struct {
	// FetchParallelism is the maximum number of concurrent requests
	// which are sent to the sibling services while resolving the cars
	// of one race. A nil value lets the use case choose its default,
	// i.e., sequential fetches.
	FetchParallelism *int `yaml:"fetch-parallelism" env:"FETCH_PARALLELISM"`
}

// NewUseCase instantiates a new races use case based on the settings
// in the `r` struct.
func (r Races) NewUseCase(
	p repo.Pool,
	races repo.Races,
	cars repo.Resolver[model.Car],
	drivers repo.Resolver[model.Driver],
	components repo.Resolver[model.Component],
) (*racesuc.UseCase, error) {
	opts := make([]racesuc.Option, 0, 1)
	if r.FetchParallelism != nil {
		opts = append(opts, racesuc.WithFetchParallelism(*r.FetchParallelism))
	}
	return racesuc.New(p, races, cars, drivers, components, opts...)
}

// Load reads the yaml configuration file from path, overrides its
// settings using the environment variables, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}
	return Parse(data, os.Environ())
}

// Parse unmarshals the yaml data and overrides its settings using the
// environ variables (in the KEY=VALUE form), followed by validation
// and normalization of the resulting settings.
func Parse(data []byte, environ []string) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	settings.Default(&c.Gin.Logger, false)
	settings.Default(&c.Gin.Recovery, false)
	settings.DefaultZero(&c.Gin.Listen, ":8080")
	settings.Default(
		&c.Upstreams.Timeout, settings.Duration(restclient.DefaultTimeout),
	)
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	minTimeout := settings.Duration(time.Millisecond)
	if err := settings.VerifyRange(
		"upstreams.timeout", c.Upstreams.Timeout, &minTimeout, nil,
	); err != nil {
		return err
	}
	minFP, maxFP := 1, 64
	return settings.VerifyRange(
		"usecases.races.fetch-parallelism",
		c.Usecases.Races.FetchParallelism, &minFP, &maxFP,
	)
}
