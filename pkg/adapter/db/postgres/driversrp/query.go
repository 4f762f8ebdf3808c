// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package driversrp

import (
	"context"
	"fmt"

	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/core/model"
)

type gDriver struct {
	ID          int64  `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name"`
	Surname     string `gorm:"column:surname"`
	Nationality string `gorm:"column:nationality"`
	Perk        string `gorm:"column:perk"`
}

func (gd *gDriver) TableName() string {
	return "drivers"
}

func newGDriver(d *model.Driver) *gDriver {
	return &gDriver{
		ID:          d.ID,
		Name:        d.Name,
		Surname:     d.Surname,
		Nationality: d.Nationality,
		Perk:        d.Perk.String(),
	}
}

func (gd *gDriver) Model() *model.Driver {
	p, _ := model.ParseDriverPerk(gd.Perk)
	return &model.Driver{
		ID:          gd.ID,
		Name:        gd.Name,
		Surname:     gd.Surname,
		Nationality: gd.Nationality,
		Perk:        p,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, d *model.Driver) (*model.Driver, error) {
	gd := newGDriver(d)
	gd.ID = 0
	if err := q.GORM(ctx).Create(gd).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gd.Model(), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, d *model.Driver) (*model.Driver, error) {
	gd := newGDriver(d)
	err := postgres.UpdateByID(q.GORM(ctx), &gDriver{}, gd.ID, map[string]any{
		"name":        gd.Name,
		"surname":     gd.Surname,
		"nationality": gd.Nationality,
		"perk":        gd.Perk,
	})
	if err != nil {
		return nil, err
	}
	return gd.Model(), nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Driver, error) {
	var gd gDriver
	if err := postgres.TakeByID(q.GORM(ctx), &gd, id, false); err != nil {
		return nil, err
	}
	return gd.Model(), nil
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	return postgres.ExistsByID(q.GORM(ctx), &gDriver{}, id)
}

func find[Q postgres.Queryer](ctx context.Context, q Q, query any, args ...any) ([]model.Driver, error) {
	var gds []gDriver
	gdb := q.GORM(ctx)
	if query != nil {
		gdb = gdb.Where(query, args...)
	}
	if err := gdb.Order("id").Find(&gds).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ds := make([]model.Driver, len(gds))
	for i := range gds {
		ds[i] = *gds[i].Model()
	}
	return ds, nil
}

func FindAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Driver, error) {
	return find(ctx, q, nil)
}

func FindByPerk[Q postgres.Queryer](ctx context.Context, q Q, p model.DriverPerk) ([]model.Driver, error) {
	return find(ctx, q, "perk = ?", p.String())
}

func FindByNationality[Q postgres.Queryer](ctx context.Context, q Q, nationality string) ([]model.Driver, error) {
	return find(ctx, q, "nationality = ?", nationality)
}

func DeleteByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	return postgres.DeleteByID(q.GORM(ctx), &gDriver{}, id)
}

func DeleteAll[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.DeleteAll(q.GORM(ctx), &gDriver{})
}
