// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package componentsuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/pitlane/internal/test/memrp"
	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/usecase/componentsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComponent() model.Component {
	return model.Component{
		Weight:       120,
		Price:        5000,
		Manufacturer: "Brembo",
		Version:      "v2",
		Type:         model.ComponentTypeGear,
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(c *model.Component)
		msg    string
	}{
		{"zero weight", func(c *model.Component) { c.Weight = 0 }, "Component weight must be greater than 0"},
		{"negative price", func(c *model.Component) { c.Price = -1 }, "Component price must be greater than 0"},
		{"no manufacturer", func(c *model.Component) { c.Manufacturer = "" }, "Component manufacturer must not be empty"},
		{"no type", func(c *model.Component) { c.Type = model.ComponentTypeInvalid }, "Component type must not be empty"},
		{"weight first", func(c *model.Component) { c.Weight, c.Type = 0, 0 }, "Component weight must be greater than 0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := validComponent()
			tc.mutate(&c)
			err := componentsuc.Validate(&c)
			assert.Equal(t, http.StatusBadRequest, cerr.StatusCode(err))
			assert.EqualError(t, errors.Unwrap(err), tc.msg)
		})
	}
	c := validComponent()
	assert.NoError(t, componentsuc.Validate(&c))
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	uc := componentsuc.New(memrp.Pool{}, memrp.NewComponents())
	c := validComponent()
	created, err := uc.Create(ctx, &c)
	require.NoError(t, err)
	c.ID = created.ID
	found, err := uc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &c, found)

	engine := validComponent()
	engine.Type = model.ComponentTypeEngine
	engine.Manufacturer = "Honda"
	_, err = uc.Create(ctx, &engine)
	require.NoError(t, err)
	gears, err := uc.FindByType(ctx, model.ComponentTypeGear)
	require.NoError(t, err)
	assert.Equal(t, []model.Component{c}, gears)
	hondas, err := uc.FindByManufacturer(ctx, "Honda")
	require.NoError(t, err)
	assert.Len(t, hondas, 1)
	_, err = uc.FindByType(ctx, model.ComponentTypeInvalid)
	assert.Equal(t, http.StatusBadRequest, cerr.StatusCode(err))

	c.Price = 1
	updated, err := uc.Update(ctx, &c)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Price)
	c.ID = 99
	_, err = uc.Update(ctx, &c)
	assert.EqualError(t, errors.Unwrap(err),
		"Cannot update, component not found with id: 99")

	err = uc.DeleteByID(ctx, 99)
	assert.Equal(t, http.StatusNotFound, cerr.StatusCode(err))
	require.NoError(t, uc.DeleteByID(ctx, created.ID))
	_, err = uc.FindByID(ctx, created.ID)
	assert.EqualError(t, errors.Unwrap(err), "Component not found with id: 1")
	require.NoError(t, uc.DeleteAll(ctx))
	all, err := uc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
