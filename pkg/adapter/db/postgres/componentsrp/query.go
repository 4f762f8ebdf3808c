// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package componentsrp

import (
	"context"
	"fmt"

	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/core/model"
)

type gComponent struct {
	ID           int64  `gorm:"primaryKey;column:id"`
	Weight       int    `gorm:"column:weight"`
	Price        int    `gorm:"column:price"`
	Manufacturer string `gorm:"column:manufacturer"`
	Version      string `gorm:"column:version"`
	Type         string `gorm:"column:type"`
}

func (gc *gComponent) TableName() string {
	return "components"
}

func newGComponent(c *model.Component) *gComponent {
	return &gComponent{
		ID:           c.ID,
		Weight:       c.Weight,
		Price:        c.Price,
		Manufacturer: c.Manufacturer,
		Version:      c.Version,
		Type:         c.Type.String(),
	}
}

// Model converts gc to a model.Component. Unknown type names, which
// may only be stored by other writers, are mapped to the invalid type.
func (gc *gComponent) Model() *model.Component {
	t, _ := model.ParseComponentType(gc.Type)
	return &model.Component{
		ID:           gc.ID,
		Weight:       gc.Weight,
		Price:        gc.Price,
		Manufacturer: gc.Manufacturer,
		Version:      gc.Version,
		Type:         t,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, c *model.Component) (*model.Component, error) {
	gc := newGComponent(c)
	gc.ID = 0
	if err := q.GORM(ctx).Create(gc).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, c *model.Component) (*model.Component, error) {
	gc := newGComponent(c)
	err := postgres.UpdateByID(q.GORM(ctx), &gComponent{}, gc.ID, map[string]any{
		"weight":       gc.Weight,
		"price":        gc.Price,
		"manufacturer": gc.Manufacturer,
		"version":      gc.Version,
		"type":         gc.Type,
	})
	if err != nil {
		return nil, err
	}
	return gc.Model(), nil
}

func FindByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Component, error) {
	var gc gComponent
	if err := postgres.TakeByID(q.GORM(ctx), &gc, id, false); err != nil {
		return nil, err
	}
	return gc.Model(), nil
}

func ExistsByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	return postgres.ExistsByID(q.GORM(ctx), &gComponent{}, id)
}

func find[Q postgres.Queryer](ctx context.Context, q Q, query any, args ...any) ([]model.Component, error) {
	var gcs []gComponent
	gdb := q.GORM(ctx)
	if query != nil {
		gdb = gdb.Where(query, args...)
	}
	if err := gdb.Order("id").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cs := make([]model.Component, len(gcs))
	for i := range gcs {
		cs[i] = *gcs[i].Model()
	}
	return cs, nil
}

func FindAll[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Component, error) {
	return find(ctx, q, nil)
}

func FindByType[Q postgres.Queryer](ctx context.Context, q Q, t model.ComponentType) ([]model.Component, error) {
	return find(ctx, q, "type = ?", t.String())
}

func FindByManufacturer[Q postgres.Queryer](ctx context.Context, q Q, manufacturer string) ([]model.Component, error) {
	return find(ctx, q, "manufacturer = ?", manufacturer)
}

func DeleteByID[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	return postgres.DeleteByID(q.GORM(ctx), &gComponent{}, id)
}

func DeleteAll[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.DeleteAll(q.GORM(ctx), &gComponent{})
}
