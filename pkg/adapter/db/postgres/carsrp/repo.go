// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp implements the repo.Cars interface on PostgreSQL.
package carsrp

import (
	"context"

	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

// queryer runs the cars queries on a connection or a transaction.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (cq queryer[Q]) Create(ctx context.Context, c *model.Car) (*model.Car, error) {
	return Create(ctx, cq.q, c)
}

func (cq queryer[Q]) Update(ctx context.Context, c *model.Car) (*model.Car, error) {
	return Update(ctx, cq.q, c)
}

func (cq queryer[Q]) FindByID(ctx context.Context, id int64) (*model.Car, error) {
	return FindByID(ctx, cq.q, id)
}

func (cq queryer[Q]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, cq.q, id)
}

func (cq queryer[Q]) FindAll(ctx context.Context) ([]model.Car, error) {
	return FindAll(ctx, cq.q)
}

func (cq queryer[Q]) FindByCarMake(ctx context.Context, carMake string) ([]model.Car, error) {
	return FindByCarMake(ctx, cq.q, carMake)
}

func (cq queryer[Q]) FindByMainDriverID(ctx context.Context, driverID int64) ([]model.Car, error) {
	return FindByMainDriverID(ctx, cq.q, driverID)
}

func (cq queryer[Q]) DeleteByID(ctx context.Context, id int64) error {
	return DeleteByID(ctx, cq.q, id)
}

func (cq queryer[Q]) DeleteAll(ctx context.Context) (int64, error) {
	return DeleteAll(ctx, cq.q)
}
