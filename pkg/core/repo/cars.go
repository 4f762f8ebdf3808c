// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/pitlane/pkg/core/model"
)

type CarsConnQueryer interface {
	CarsQueryer
}

type CarsTxQueryer interface {
	CarsQueryer
}

type CarsQueryer interface {
	EntityQueryer[model.Car]
	FindByCarMake(ctx context.Context, carMake string) ([]model.Car, error)
	FindByMainDriverID(ctx context.Context, driverID int64) ([]model.Car, error)
}

type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
