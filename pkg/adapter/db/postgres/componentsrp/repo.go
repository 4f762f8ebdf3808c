// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package componentsrp implements the repo.Components interface on
// PostgreSQL.
package componentsrp

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

func (components *Repo) Conn(c repo.Conn) repo.ComponentsConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (components *Repo) Tx(tx repo.Tx) repo.ComponentsTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (cq queryer[Q]) Create(ctx context.Context, c *model.Component) (*model.Component, error) {
	return Create(ctx, cq.q, c)
}

func (cq queryer[Q]) Update(ctx context.Context, c *model.Component) (*model.Component, error) {
	return Update(ctx, cq.q, c)
}

func (cq queryer[Q]) FindByID(ctx context.Context, id int64) (*model.Component, error) {
	return FindByID(ctx, cq.q, id)
}

func (cq queryer[Q]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ExistsByID(ctx, cq.q, id)
}

func (cq queryer[Q]) FindAll(ctx context.Context) ([]model.Component, error) {
	return FindAll(ctx, cq.q)
}

func (cq queryer[Q]) FindByType(ctx context.Context, t model.ComponentType) ([]model.Component, error) {
	return FindByType(ctx, cq.q, t)
}

func (cq queryer[Q]) FindByManufacturer(ctx context.Context, manufacturer string) ([]model.Component, error) {
	return FindByManufacturer(ctx, cq.q, manufacturer)
}

func (cq queryer[Q]) DeleteByID(ctx context.Context, id int64) error {
	return DeleteByID(ctx, cq.q, id)
}

func (cq queryer[Q]) DeleteAll(ctx context.Context) (int64, error) {
	return DeleteAll(ctx, cq.q)
}
