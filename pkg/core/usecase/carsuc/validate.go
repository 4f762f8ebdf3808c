// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
)

// Validate checks the car references and its local fields in order,
// stopping at the first violation:
//  1. car must have at least one component,
//  2. each component must exist, in the ComponentIDs order,
//  3. the main driver, if any, must exist,
//  4. each test driver must exist, in the TestDriverIDs order,
//  5. the car make must be non-empty.
//
// Unresolvable references are reported as cerr.DataStorage errors and
// the car make as a cerr.Validation error. Transport failures of the
// resolvers are returned as is.
func (cars *UseCase) Validate(ctx context.Context, car *model.Car) error {
	if len(car.ComponentIDs) == 0 {
		return cerr.DataStorage(
			errors.New("Car must have at least one component."),
		)
	}
	for _, id := range car.ComponentIDs {
		ok, err := cars.components.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug(ctx, "missing component", log.ID("component", id))
			return cerr.Newf(cerr.DataStorage,
				"Component with id: %d does not exist.", id,
			)
		}
	}
	if id := car.MainDriverID; id != nil {
		if err := cars.driverExists(ctx, *id); err != nil {
			return err
		}
	}
	for _, id := range car.TestDriverIDs {
		if err := cars.driverExists(ctx, id); err != nil {
			return err
		}
	}
	if car.CarMake == "" {
		return cerr.Validation(
			errors.New("Car make cannot be null or empty."),
		)
	}
	return nil
}

func (cars *UseCase) driverExists(ctx context.Context, id int64) error {
	ok, err := cars.drivers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug(ctx, "missing driver", log.ID("driver", id))
		return cerr.Newf(cerr.DataStorage,
			"Driver with id: %d does not exist.", id,
		)
	}
	return nil
}
