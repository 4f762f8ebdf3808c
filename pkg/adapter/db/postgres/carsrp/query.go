// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/core/model"
)

type gCar struct {
	ID            int64         `gorm:"primaryKey;column:id"`
	MainDriverID  *int64        `gorm:"column:main_driver_id"`
	CarMake       string        `gorm:"column:car_make"`
	TestDriverIDs pq.Int64Array `gorm:"column:test_driver_ids;type:bigint[]"`
	ComponentIDs  pq.Int64Array `gorm:"column:component_ids;type:bigint[]"`
}

func (gc *gCar) TableName() string {
	return "cars"
}

func newGCar(c *model.Car) *gCar {
	return &gCar{
		ID:            c.ID,
		MainDriverID:  c.MainDriverID,
		CarMake:       c.CarMake,
		TestDriverIDs: append(pq.Int64Array{}, c.TestDriverIDs...),
		ComponentIDs:  append(pq.Int64Array{}, c.ComponentIDs...),
	}
}

func (gc *gCar) Model() *model.Car {
	return &model.Car{
		ID:            gc.ID,
		MainDriverID:  gc.MainDriverID,
		CarMake:       gc.CarMake,
		TestDriverIDs: idSet(gc.TestDriverIDs),
		ComponentIDs:  idSet(gc.ComponentIDs),
	}
}

// idSet returns ids as a model ID set. An empty set is returned as nil
// whether the column held '{}' or NULL.
func idSet(ids pq.Int64Array) []int64 {
	if len(ids) == 0 {
		return nil
	}
	return []int64(ids)
}

func models(gcs []gCar) []model.Car {
	cs := make([]model.Car, len(gcs))
	for i := range gcs {
		cs[i] = *gcs[i].Model()
	}
	return cs
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, c *model.Car) (*model.Car, error) {
	gc := newGCar(c)
	gc.ID = 0
	if err := q.GORM(ctx).Create(gc).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, c *model.Car) (*model.Car, error) {
	gc := newGCar(c)
	err := postgres.UpdateByID(q.GORM(ctx), &gCar{}, gc.ID, map[string]any{
		"main_driver_id":  gc.MainDriverID,
		"car_make":        gc.CarMake,
		"test_driver_ids": gc.TestDriverIDs,
		"component_ids":   gc.ComponentIDs,
	})
	if err != nil {
		return nil, err
	}
	return gc.Model(), nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Car, error) {
	var gc gCar
	if err := postgres.TakeByID(q.GORM(ctx), &gc, id, false); err != nil {
		return nil, err
	}
	return gc.Model(), nil
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	return postgres.ExistsByID(q.GORM(ctx), &gCar{}, id)
}

func find[Q postgres.Queryer](ctx context.Context, q Q, query any, args ...any) ([]model.Car, error) {
	var gcs []gCar
	gdb := q.GORM(ctx)
	if query != nil {
		gdb = gdb.Where(query, args...)
	}
	if err := gdb.Order("id").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gcs), nil
}

func FindAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Car, error) {
	return find(ctx, q, nil)
}

func FindByCarMake[Q postgres.Queryer](ctx context.Context, q Q, carMake string) ([]model.Car, error) {
	return find(ctx, q, "car_make = ?", carMake)
}

func FindByMainDriverID[Q postgres.Queryer](ctx context.Context, q Q, driverID int64) ([]model.Car, error) {
	return find(ctx, q, "main_driver_id = ?", driverID)
}

func DeleteByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	return postgres.DeleteByID(q.GORM(ctx), &gCar{}, id)
}

func DeleteAll[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.DeleteAll(q.GORM(ctx), &gCar{})
}
