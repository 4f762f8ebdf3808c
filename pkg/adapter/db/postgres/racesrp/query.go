// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesrp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/core/model"
)

type gRace struct {
	ID      int64     `gorm:"primaryKey;column:id"`
	Name    string    `gorm:"column:name"`
	Country string    `gorm:"column:country"`
	City    string    `gorm:"column:city"`
	Street  string    `gorm:"column:street"`
	Date    time.Time `gorm:"column:date;type:date"`
	Car1ID  *int64    `gorm:"column:car1_id"`
	Car2ID  *int64    `gorm:"column:car2_id"`
}

func (gr *gRace) TableName() string {
	return "races"
}

func newGRace(r *model.Race) *gRace {
	gr := &gRace{
		ID:     r.ID,
		Name:   r.Name,
		Date:   r.Date,
		Car1ID: r.Car1ID,
		Car2ID: r.Car2ID,
	}
	if l := r.Location; l != nil {
		gr.Country, gr.City, gr.Street = l.Country, l.City, l.Street
	}
	return gr
}

func (gr *gRace) Model() *model.Race {
	y, m, d := gr.Date.Date()
	return &model.Race{
		ID:   gr.ID,
		Name: gr.Name,
		Location: &model.Location{
			Country: gr.Country,
			City:    gr.City,
			Street:  gr.Street,
		},
		Date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Car1ID: gr.Car1ID,
		Car2ID: gr.Car2ID,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, r *model.Race) (*model.Race, error) {
	gr := newGRace(r)
	gr.ID = 0
	if err := q.GORM(ctx).Create(gr).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gr.Model(), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, r *model.Race) (*model.Race, error) {
	gr := newGRace(r)
	err := postgres.UpdateByID(q.GORM(ctx), &gRace{}, gr.ID, map[string]any{
		"name":    gr.Name,
		"country": gr.Country,
		"city":    gr.City,
		"street":  gr.Street,
		"date":    gr.Date,
		"car1_id": gr.Car1ID,
		"car2_id": gr.Car2ID,
	})
	if err != nil {
		return nil, err
	}
	return gr.Model(), nil
}

func findByID[Q postgres.Queryer](ctx context.Context, q Q, id int64, forUpdate bool) (*model.Race, error) {
	var gr gRace
	if err := postgres.TakeByID(q.GORM(ctx), &gr, id, forUpdate); err != nil {
		return nil, err
	}
	return gr.Model(), nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Race, error) {
	return findByID(ctx, q, id, false)
}

// FindByIDForUpdate finds the id race and locks its row. It must be
// called in a transaction.
func FindByIDForUpdate(ctx context.Context, tx *postgres.Tx, id int64) (*model.Race, error) {
	return findByID(ctx, tx, id, true)
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	return postgres.ExistsByID(q.GORM(ctx), &gRace{}, id)
}

func find[Q postgres.Queryer](ctx context.Context, q Q, query any, args ...any) ([]model.Race, error) {
	var grs []gRace
	gdb := q.GORM(ctx)
	if query != nil {
		gdb = gdb.Where(query, args...)
	}
	if err := gdb.Order("id").Find(&grs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rs := make([]model.Race, len(grs))
	for i := range grs {
		rs[i] = *grs[i].Model()
	}
	return rs, nil
}

func FindAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Race, error) {
	return find(ctx, q, nil)
}

// FindByLocation matches races having any of the non-empty country,
// city, or street values. Nothing matches if all of them are empty.
func FindByLocation[Q postgres.Queryer](
	ctx context.Context, q Q, country, city, street string,
) ([]model.Race, error) {
	var conds []string
	var args []any
	for col, v := range map[string]string{
		"country": country, "city": city, "street": street,
	} {
		if v != "" {
			conds = append(conds, col+" = ?")
			args = append(args, v)
		}
	}
	if len(conds) == 0 {
		return []model.Race{}, nil
	}
	return find(ctx, q, strings.Join(conds, " OR "), args...)
}

func FindByCarID[Q postgres.Queryer](ctx context.Context, q Q, carID int64) ([]model.Race, error) {
	return find(ctx, q, "car1_id = ? OR car2_id = ?", carID, carID)
}

func DeleteByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	return postgres.DeleteByID(q.GORM(ctx), &gRace{}, id)
}

func DeleteAll[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.DeleteAll(q.GORM(ctx), &gRace{})
}
