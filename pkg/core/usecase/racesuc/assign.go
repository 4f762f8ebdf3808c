// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// AssignCarOne puts carID into the first car slot of the raceID race.
// Reassigning the same or another existing car is always allowed.
func (races *UseCase) AssignCarOne(ctx context.Context, raceID, carID int64) (*model.Race, error) {
	return races.assignCar(ctx, raceID, carID, func(r *model.Race) {
		r.Car1ID = &carID
	})
}

// AssignCarTwo puts carID into the second car slot of the raceID race.
func (races *UseCase) AssignCarTwo(ctx context.Context, raceID, carID int64) (*model.Race, error) {
	return races.assignCar(ctx, raceID, carID, func(r *model.Race) {
		r.Car2ID = &carID
	})
}

// assignCar checks that the race exists, then checks the car remotely,
// and at last updates the race slot using the set function.
// The remote check happens while no database connection is held, so
// the race is loaded again (and locked) before its update.
func (races *UseCase) assignCar(
	ctx context.Context,
	raceID, carID int64,
	set func(r *model.Race),
) (race *model.Race, err error) {
	if _, err = races.FindByID(ctx, raceID); err != nil {
		return nil, err
	}
	ok, err := races.cars.Exists(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, cerr.DataStorage(errors.New("Car does not exist"))
	}
	err = races.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := races.racesrp.Tx(tx)
			r, err := q.FindByIDForUpdate(ctx, raceID)
			if err != nil {
				return err
			}
			set(r)
			race, err = q.Update(ctx, r)
			return err
		})
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, raceNotFound(raceID)
	}
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "car assigned to race",
		log.ID("race", raceID), log.ID("car", carID),
	)
	return race, nil
}
