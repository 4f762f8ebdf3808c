// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package racesrp implements the repo.Races interface on PostgreSQL.
package racesrp

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

func (races *Repo) Conn(c repo.Conn) repo.RacesConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (races *Repo) Tx(tx repo.Tx) repo.RacesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{queryer: queryer[*postgres.Tx]{q: tt}}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

type txQueryer struct {
	queryer[*postgres.Tx]
}

func (tq txQueryer) FindByIDForUpdate(ctx context.Context, id int64) (*model.Race, error) {
	return FindByIDForUpdate(ctx, tq.q, id)
}

func (rq queryer[Q]) Create(ctx context.Context, r *model.Race) (*model.Race, error) {
	return Create(ctx, rq.q, r)
}

func (rq queryer[Q]) Update(ctx context.Context, r *model.Race) (*model.Race, error) {
	return Update(ctx, rq.q, r)
}

func (rq queryer[Q]) FindByID(ctx context.Context, id int64) (*model.Race, error) {
	return FindByID(ctx, rq.q, id)
}

func (rq queryer[Q]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, rq.q, id)
}

func (rq queryer[Q]) FindAll(ctx context.Context) ([]model.Race, error) {
	return FindAll(ctx, rq.q)
}

func (rq queryer[Q]) FindByLocation(ctx context.Context, country, city, street string) ([]model.Race, error) {
	return FindByLocation(ctx, rq.q, country, city, street)
}

func (rq queryer[Q]) FindByCarID(ctx context.Context, carID int64) ([]model.Race, error) {
	return FindByCarID(ctx, rq.q, carID)
}

func (rq queryer[Q]) DeleteByID(ctx context.Context, id int64) error {
	return DeleteByID(ctx, rq.q, id)
}

func (rq queryer[Q]) DeleteAll(ctx context.Context) (int64, error) {
	return DeleteAll(ctx, rq.q)
}
