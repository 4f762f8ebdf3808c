// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/adapter/config"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/componentsrp"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/driversrp"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/racesrp"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/carsrs"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/componentsrs"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/driversrs"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/healthrs"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/racesrs"
	"github.com/momeni/pitlane/pkg/core/repo"
	"github.com/momeni/pitlane/pkg/core/usecase/carsuc"
	"github.com/momeni/pitlane/pkg/core/usecase/componentsuc"
	"github.com/momeni/pitlane/pkg/core/usecase/driversuc"
)

// Names of the services which may be registered.
const (
	Car       = "car"
	Component = "component"
	Driver    = "driver"
	Race      = "race"
)

// Services lists all service names.
var Services = []string{Car, Component, Driver, Race}

// Register instantiates the repository, use case, and resource of
// the given service and registers its REST APIs on the e engine,
// along with the /healthz probe which all services expose.
// The p connections pool is passed to the use case instance, so it may
// acquire/release connections and transactions on demand. The car and
// race services also receive resolvers for their sibling services
// based on the c configuration settings.
func Register(e *gin.Engine, p repo.Pool, c *config.Config, service string) error {
	r := e.Group("/")
	healthrs.Register(r, p)
	switch service {
	case Component:
		componentsrs.Register(r, componentsuc.New(p, componentsrp.New()))
	case Driver:
		driversrs.Register(r, driversuc.New(p, driversrp.New()))
	case Car:
		drivers, err := c.Upstreams.Drivers()
		if err != nil {
			return err
		}
		components, err := c.Upstreams.Components()
		if err != nil {
			return err
		}
		carsrs.Register(r, carsuc.New(p, carsrp.New(), drivers, components))
	case Race:
		cars, err := c.Upstreams.Cars()
		if err != nil {
			return err
		}
		drivers, err := c.Upstreams.Drivers()
		if err != nil {
			return err
		}
		components, err := c.Upstreams.Components()
		if err != nil {
			return err
		}
		uc, err := c.Usecases.Races.NewUseCase(
			p, racesrp.New(), cars, drivers, components,
		)
		if err != nil {
			return fmt.Errorf("creating races use case: %w", err)
		}
		racesrs.Register(r, uc)
	default:
		return fmt.Errorf("unknown service: %q", service)
	}
	return nil
}
