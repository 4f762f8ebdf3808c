// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package driversuc contains the drivers UseCase which supports the
// CRUD use cases of racing drivers and their lookup by perk or
// nationality.
package driversuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// UseCase represents a drivers use case. It holds a database
// connection pool and the drivers repository instance.
type UseCase struct {
	pool      repo.Pool
	driversrp repo.Drivers
}

// New instantiates a drivers use case.
func New(p repo.Pool, d repo.Drivers) *UseCase {
	return &UseCase{pool: p, driversrp: d}
}

// Validate checks the local field constraints of the d driver and
// returns the first violation as a cerr.Validation error.
func Validate(d *model.Driver) error {
	var msg string
	switch {
	case d.Name == "":
		msg = "Driver name cannot be empty"
	case d.Surname == "":
		msg = "Driver Surname cannot be empty"
	case d.Nationality == "":
		msg = "Driver Country cannot be empty"
	case d.Perk.Validate() != nil:
		msg = "Driver perk cannot be empty"
	default:
		return nil
	}
	return cerr.Validation(errors.New(msg))
}

func (uc *UseCase) Create(ctx context.Context, d *model.Driver) (drv *model.Driver, err error) {
	if err = Validate(d); err != nil {
		return nil, err
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drv, err = uc.driversrp.Conn(c).Create(ctx, d)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "driver created", log.ID("id", drv.ID))
	return drv, nil
}

// Update validates d and overwrites the driver with the same ID.
// Validation errors take precedence over the not-found error.
func (uc *UseCase) Update(ctx context.Context, d *model.Driver) (drv *model.Driver, err error) {
	if err = Validate(d); err != nil {
		return nil, err
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drv, err = uc.driversrp.Conn(c).Update(ctx, d)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, cerr.Newf(cerr.NotFound,
			"Driver not found with id: %d for update", d.ID,
		)
	}
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "driver updated", log.ID("id", drv.ID))
	return drv, nil
}

func (uc *UseCase) FindByID(ctx context.Context, id int64) (drv *model.Driver, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drv, err = uc.driversrp.Conn(c).FindByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, cerr.Newf(cerr.NotFound,
			"Driver not found with id: %d", id,
		)
	}
	if err != nil {
		return nil, err
	}
	return drv, nil
}

func (uc *UseCase) FindAll(ctx context.Context) (drvs []model.Driver, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drvs, err = uc.driversrp.Conn(c).FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return drvs, nil
}

func (uc *UseCase) FindByPerk(ctx context.Context, p model.DriverPerk) (drvs []model.Driver, err error) {
	if err = p.Validate(); err != nil {
		return nil, cerr.Validation(err)
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drvs, err = uc.driversrp.Conn(c).FindByPerk(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return drvs, nil
}

func (uc *UseCase) FindByNationality(ctx context.Context, nationality string) (drvs []model.Driver, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		drvs, err = uc.driversrp.Conn(c).FindByNationality(ctx, nationality)
		return err
	})
	if err != nil {
		return nil, err
	}
	return drvs, nil
}

func (uc *UseCase) DeleteByID(ctx context.Context, id int64) error {
	err := uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return uc.driversrp.Conn(c).DeleteByID(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return cerr.Newf(cerr.NotFound,
			"Driver not found with id: %d for deletion", id,
		)
	}
	if err != nil {
		return err
	}
	log.Info(ctx, "driver deleted", log.ID("id", id))
	return nil
}

func (uc *UseCase) DeleteAll(ctx context.Context) error {
	var n int64
	err := uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) (err error) {
		n, err = uc.driversrp.Conn(c).DeleteAll(ctx)
		return err
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "all drivers deleted", log.Count(n))
	return nil
}
