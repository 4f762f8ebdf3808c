// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which supports the
// cars related use cases. Cars refer to their drivers and components
// by ID. These references are owned by the driver and component
// services, so they are validated remotely (see Validate) before a car
// is created or updated. Those checks are point-in-time checks and
// a referenced driver or component may be deleted afterwards.
package carsuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// UseCase represents a cars use case. It holds a database connection
// pool, the cars repository instance (to be guided with the DB pool),
// and the resolvers of drivers and components.
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars

	drivers    repo.Resolver[model.Driver]
	components repo.Resolver[model.Component]
}

// New instantiates a cars use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
func New(
	p repo.Pool,
	c repo.Cars,
	drivers repo.Resolver[model.Driver],
	components repo.Resolver[model.Component],
) *UseCase {
	return &UseCase{
		pool:       p,
		carsrp:     c,
		drivers:    drivers,
		components: components,
	}
}

// Create validates the car references and fields, and then stores it.
// It returns the stored car with its assigned ID.
func (cars *UseCase) Create(ctx context.Context, car *model.Car) (c *model.Car, err error) {
	if err = cars.Validate(ctx, car); err != nil {
		return nil, err
	}
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		c, err = cars.carsrp.Conn(cn).Create(ctx, car)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "car created", log.ID("id", c.ID))
	return c, nil
}

// Update runs the same validation as Create and then overwrites the
// car with the same ID. A missing car is reported only if the
// validation passes.
func (cars *UseCase) Update(ctx context.Context, car *model.Car) (c *model.Car, err error) {
	if err = cars.Validate(ctx, car); err != nil {
		return nil, err
	}
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		c, err = cars.carsrp.Conn(cn).Update(ctx, car)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, notFound(car.ID)
	}
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "car updated", log.ID("id", c.ID))
	return c, nil
}

func (cars *UseCase) FindByID(ctx context.Context, id int64) (c *model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		c, err = cars.carsrp.Conn(cn).FindByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (cars *UseCase) FindAll(ctx context.Context) (cs []model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		cs, err = cars.carsrp.Conn(cn).FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func (cars *UseCase) FindByCarMake(ctx context.Context, carMake string) (cs []model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		cs, err = cars.carsrp.Conn(cn).FindByCarMake(ctx, carMake)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// FindByMainDriverID returns cars which use driverID as their main
// driver. The driver is not resolved remotely.
func (cars *UseCase) FindByMainDriverID(ctx context.Context, driverID int64) (cs []model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		cs, err = cars.carsrp.Conn(cn).FindByMainDriverID(ctx, driverID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func (cars *UseCase) DeleteByID(ctx context.Context, id int64) error {
	err := cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		return cars.carsrp.Conn(cn).DeleteByID(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return err
	}
	log.Info(ctx, "car deleted", log.ID("id", id))
	return nil
}

func (cars *UseCase) DeleteAll(ctx context.Context) error {
	var n int64
	err := cars.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) (err error) {
		n, err = cars.carsrp.Conn(cn).DeleteAll(ctx)
		return err
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "all cars deleted", log.Count(n))
	return nil
}

func notFound(id int64) error {
	return cerr.Newf(cerr.NotFound, "Car with id: %d not found.", id)
}
