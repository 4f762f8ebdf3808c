// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package driversrp implements the repo.Drivers interface on
// PostgreSQL.
package driversrp

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

func (drivers *Repo) Conn(c repo.Conn) repo.DriversConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (drivers *Repo) Tx(tx repo.Tx) repo.DriversTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (dq queryer[Q]) Create(ctx context.Context, d *model.Driver) (*model.Driver, error) {
	return Create(ctx, dq.q, d)
}

func (dq queryer[Q]) Update(ctx context.Context, d *model.Driver) (*model.Driver, error) {
	return Update(ctx, dq.q, d)
}

func (dq queryer[Q]) FindByID(ctx context.Context, id int64) (*model.Driver, error) {
	return FindByID(ctx, dq.q, id)
}

func (dq queryer[Q]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, dq.q, id)
}

func (dq queryer[Q]) FindAll(ctx context.Context) ([]model.Driver, error) {
	return FindAll(ctx, dq.q)
}

func (dq queryer[Q]) FindByPerk(ctx context.Context, p model.DriverPerk) ([]model.Driver, error) {
	return FindByPerk(ctx, dq.q, p)
}

func (dq queryer[Q]) FindByNationality(ctx context.Context, nationality string) ([]model.Driver, error) {
	return FindByNationality(ctx, dq.q, nationality)
}

func (dq queryer[Q]) DeleteByID(ctx context.Context, id int64) error {
	return DeleteByID(ctx, dq.q, id)
}

func (dq queryer[Q]) DeleteAll(ctx context.Context) (int64, error) {
	return DeleteAll(ctx, dq.q)
}
