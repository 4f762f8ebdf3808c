// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package wire defines the JSON representation of the entities and
// views which are exchanged by the services. The same structs are
// used by the REST resources (for their request and response bodies)
// and by the REST client (for decoding sibling service responses), so
// both sides of a call agree on one contract.
//
// ID sets are deduplicated while being converted to models, keeping
// the first occurrence of each ID.
package wire

import (
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

type Car struct {
	ID            int64   `json:"id"`
	MainDriverID  *int64  `json:"mainDriverId"`
	CarMake       string  `json:"carMake"`
	TestDriverIDs []int64 `json:"testDriverIds"`
	ComponentIDs  []int64 `json:"componentIds"`
}

func NewCar(c *model.Car) Car {
	return Car{
		ID:            c.ID,
		MainDriverID:  c.MainDriverID,
		CarMake:       c.CarMake,
		TestDriverIDs: nonNil(c.TestDriverIDs),
		ComponentIDs:  nonNil(c.ComponentIDs),
	}
}

func (c *Car) Model() *model.Car {
	return &model.Car{
		ID:            c.ID,
		MainDriverID:  c.MainDriverID,
		CarMake:       c.CarMake,
		TestDriverIDs: lo.Uniq(c.TestDriverIDs),
		ComponentIDs:  lo.Uniq(c.ComponentIDs),
	}
}

type Component struct {
	ID           int64  `json:"id"`
	Weight       int    `json:"weight"`
	Price        int    `json:"price"`
	Manufacturer string `json:"manufacturer"`
	Version      string `json:"version"`
	Type         string `json:"type"`
}

func NewComponent(c *model.Component) Component {
	return Component{
		ID:           c.ID,
		Weight:       c.Weight,
		Price:        c.Price,
		Manufacturer: c.Manufacturer,
		Version:      c.Version,
		Type:         enumString(c.Type),
	}
}

// Model converts c to a model. An unknown type string is kept as
// model.ComponentTypeInvalid, so it is reported by the validation.
func (c *Component) Model() *model.Component {
	t, _ := model.ParseComponentType(c.Type)
	return &model.Component{
		ID:           c.ID,
		Weight:       c.Weight,
		Price:        c.Price,
		Manufacturer: c.Manufacturer,
		Version:      c.Version,
		Type:         t,
	}
}

type Driver struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Nationality string `json:"nationality"`
	Perk        string `json:"perk"`
}

func NewDriver(d *model.Driver) Driver {
	return Driver{
		ID:          d.ID,
		Name:        d.Name,
		Surname:     d.Surname,
		Nationality: d.Nationality,
		Perk:        enumString(d.Perk),
	}
}

// Model converts d to a model. An unknown perk string is kept as
// model.DriverPerkInvalid, so it is reported by the validation.
func (d *Driver) Model() *model.Driver {
	p, _ := model.ParseDriverPerk(d.Perk)
	return &model.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Surname:     d.Surname,
		Nationality: d.Nationality,
		Perk:        p,
	}
}

type enum interface {
	Validate() error
	String() string
}

// enumString returns the wire string of e, or an empty string if e is
// invalid, since String panics for invalid values.
func enumString(e enum) string {
	if e.Validate() != nil {
		return ""
	}
	return e.String()
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
