// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package racesuc contains the races UseCase which supports the CRUD
// use cases of races, the assignment of cars to their two slots, and
// the FindAllWithCars use case which assembles denormalized views of
// all races by resolving their cars, drivers, and components remotely.
package racesuc

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// UseCase represents a races use case. It holds a database connection
// pool, the races repository, and the resolvers of the cars, drivers,
// and components which are owned by sibling services.
type UseCase struct {
	pool    repo.Pool
	racesrp repo.Races

	cars       repo.Resolver[model.Car]
	drivers    repo.Resolver[model.Driver]
	components repo.Resolver[model.Component]

	fetchParallelism int
}

// New instantiates a races use case.
// Required parameters are passed individually, while optional ones
// are passed as a series of functional options.
func New(
	p repo.Pool,
	r repo.Races,
	cars repo.Resolver[model.Car],
	drivers repo.Resolver[model.Driver],
	components repo.Resolver[model.Component],
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:       p,
		racesrp:    r,
		cars:       cars,
		drivers:    drivers,
		components: components,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.fetchParallelism == 0 {
		uc.fetchParallelism = 1
	}
	return uc, nil
}

// Create validates and stores the r race, returning the stored race
// with its assigned ID.
func (races *UseCase) Create(ctx context.Context, r *model.Race) (race *model.Race, err error) {
	if err = races.Validate(ctx, r); err != nil {
		return nil, err
	}
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		race, err = races.racesrp.Conn(c).Create(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "race created", log.ID("id", race.ID))
	return race, nil
}

// Update validates r exactly like Create and then overwrites the race
// with the same ID. The existence of the race itself is checked after
// the validation, so an invalid car reference is reported even if the
// race does not exist.
func (races *UseCase) Update(ctx context.Context, r *model.Race) (race *model.Race, err error) {
	if err = races.Validate(ctx, r); err != nil {
		return nil, err
	}
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		race, err = races.racesrp.Conn(c).Update(ctx, r)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, cerr.Newf(cerr.NotFound,
			"Cannot update, race not found with id: %d", r.ID,
		)
	}
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "race updated", log.ID("id", race.ID))
	return race, nil
}

func (races *UseCase) FindByID(ctx context.Context, id int64) (race *model.Race, err error) {
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		race, err = races.racesrp.Conn(c).FindByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, raceNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return race, nil
}

func (races *UseCase) FindAll(ctx context.Context) (rs []model.Race, err error) {
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rs, err = races.racesrp.Conn(c).FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// FindByLocation returns the races which match any of the given
// non-empty country, city, or street values.
func (races *UseCase) FindByLocation(ctx context.Context, country, city, street string) (rs []model.Race, err error) {
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rs, err = races.racesrp.Conn(c).FindByLocation(ctx, country, city, street)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// FindByCarID returns the races which have carID in any of their
// two car slots.
func (races *UseCase) FindByCarID(ctx context.Context, carID int64) (rs []model.Race, err error) {
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rs, err = races.racesrp.Conn(c).FindByCarID(ctx, carID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (races *UseCase) DeleteByID(ctx context.Context, id int64) error {
	err := races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return races.racesrp.Conn(c).DeleteByID(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return cerr.Newf(cerr.NotFound,
			"Cannot delete, race not found with id: %d", id,
		)
	}
	if err != nil {
		return err
	}
	log.Info(ctx, "race deleted", log.ID("id", id))
	return nil
}

func (races *UseCase) DeleteAll(ctx context.Context) error {
	var n int64
	err := races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) (err error) {
		n, err = races.racesrp.Conn(c).DeleteAll(ctx)
		return err
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "all races deleted", log.Count(n))
	return nil
}

func raceNotFound(id int64) error {
	return cerr.Newf(cerr.NotFound, "Race not found with id: %d", id)
}
