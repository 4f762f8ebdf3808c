// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/pitlane/pkg/core/model"
)

type DriversConnQueryer interface {
	DriversQueryer
}

type DriversTxQueryer interface {
	DriversQueryer
}

type DriversQueryer interface {
	EntityQueryer[model.Driver]
	FindByPerk(ctx context.Context, p model.DriverPerk) ([]model.Driver, error)
	FindByNationality(ctx context.Context, nationality string) ([]model.Driver, error)
}

type Drivers interface {
	Conn(Conn) DriversConnQueryer
	Tx(Tx) DriversTxQueryer
}
