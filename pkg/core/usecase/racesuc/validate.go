// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/model"
)

// Validate checks the r race and returns its first violation.
// Car references are checked before the local fields, in this order:
// car1, car2, date, name, location presence, and location fields.
// Unresolvable cars are reported as cerr.DataStorage errors and local
// field violations as cerr.Validation errors.
func (races *UseCase) Validate(ctx context.Context, r *model.Race) error {
	for _, id := range []*int64{r.Car1ID, r.Car2ID} {
		if id == nil {
			continue
		}
		ok, err := races.cars.Exists(ctx, *id)
		if err != nil {
			return err
		}
		if !ok {
			return cerr.Newf(cerr.DataStorage,
				"Car with id %d does not exist", *id,
			)
		}
	}
	var msg string
	switch {
	case r.Date.IsZero():
		msg = "Race date cannot be empty"
	case r.Name == "":
		msg = "Race name cannot be empty"
	case r.Location == nil:
		msg = "Race location cannot be empty"
	case !r.Location.IsComplete():
		msg = "Race location data cannot be empty"
	default:
		return nil
	}
	return cerr.Validation(errors.New(msg))
}
