// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// RaceView is a denormalized projection of a Race whose car slots are
// replaced by the hydrated cars. A nil Car1 or Car2 indicates that the
// slot was empty or its car could not be fetched.
type RaceView struct {
	Name     string
	Location *Location
	Date     time.Time
	Car1     *CarView
	Car2     *CarView
}

// CarView is a denormalized projection of a Car.
// TestDrivers and Components are sets of views which may contain a
// single nil member when some referenced entities were not found.
type CarView struct {
	CarMake     string
	MainDriver  *DriverView
	TestDrivers []*DriverView
	Components  []*ComponentView
}

// DriverView is a projection of a Driver without its identity.
type DriverView struct {
	Name        string
	Surname     string
	Nationality string
	Perk        DriverPerk
}

// NewDriverView projects d driver. It returns nil for a nil d.
func NewDriverView(d *Driver) *DriverView {
	if d == nil {
		return nil
	}
	return &DriverView{
		Name:        d.Name,
		Surname:     d.Surname,
		Nationality: d.Nationality,
		Perk:        d.Perk,
	}
}

// ComponentView is a projection of a Component without its identity.
type ComponentView struct {
	Weight       int
	Price        int
	Manufacturer string
	Version      string
	Type         ComponentType
}

// NewComponentView projects c component. It returns nil for a nil c.
func NewComponentView(c *Component) *ComponentView {
	if c == nil {
		return nil
	}
	return &ComponentView{
		Weight:       c.Weight,
		Price:        c.Price,
		Manufacturer: c.Manufacturer,
		Version:      c.Version,
		Type:         c.Type,
	}
}
