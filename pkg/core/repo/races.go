// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/pitlane/pkg/core/model"
)

type RacesConnQueryer interface {
	RacesQueryer
}

type RacesTxQueryer interface {
	RacesQueryer

	// FindByIDForUpdate is like FindByID, but locks the found row
	// until the end of the current transaction.
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Race, error)
}

type RacesQueryer interface {
	EntityQueryer[model.Race]

	// FindByLocation returns races matching any of the non-empty
	// country, city, or street arguments.
	FindByLocation(ctx context.Context, country, city, street string) ([]model.Race, error)

	// FindByCarID returns races which have carID in either slot.
	FindByCarID(ctx context.Context, carID int64) ([]model.Race, error)
}

type Races interface {
	Conn(Conn) RacesConnQueryer
	Tx(Tx) RacesTxQueryer
}
