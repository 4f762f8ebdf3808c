// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package memrp

import (
	"context"

	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// Cars is an in-memory repo.Cars implementation.
type Cars struct {
	*Store[model.Car]
}

func NewCars() Cars {
	return Cars{newStore(
		func(c *model.Car) *int64 { return &c.ID },
		func(c model.Car) model.Car {
			c.MainDriverID = cloneID(c.MainDriverID)
			c.TestDriverIDs = cloneIDs(c.TestDriverIDs)
			c.ComponentIDs = cloneIDs(c.ComponentIDs)
			return c
		},
	)}
}

func (c Cars) Conn(repo.Conn) repo.CarsConnQueryer {
	return c
}

func (c Cars) Tx(repo.Tx) repo.CarsTxQueryer {
	return c
}

func (c Cars) FindByCarMake(_ context.Context, carMake string) ([]model.Car, error) {
	return c.filter(func(m *model.Car) bool {
		return m.CarMake == carMake
	}), nil
}

func (c Cars) FindByMainDriverID(_ context.Context, driverID int64) ([]model.Car, error) {
	return c.filter(func(m *model.Car) bool {
		return m.MainDriverID != nil && *m.MainDriverID == driverID
	}), nil
}

// Components is an in-memory repo.Components implementation.
type Components struct {
	*Store[model.Component]
}

func NewComponents() Components {
	return Components{newStore(
		func(c *model.Component) *int64 { return &c.ID },
		func(c model.Component) model.Component { return c },
	)}
}

func (c Components) Conn(repo.Conn) repo.ComponentsConnQueryer {
	return c
}

func (c Components) Tx(repo.Tx) repo.ComponentsTxQueryer {
	return c
}

func (c Components) FindByType(_ context.Context, t model.ComponentType) ([]model.Component, error) {
	return c.filter(func(m *model.Component) bool {
		return m.Type == t
	}), nil
}

func (c Components) FindByManufacturer(_ context.Context, manufacturer string) ([]model.Component, error) {
	return c.filter(func(m *model.Component) bool {
		return m.Manufacturer == manufacturer
	}), nil
}

// Drivers is an in-memory repo.Drivers implementation.
type Drivers struct {
	*Store[model.Driver]
}

func NewDrivers() Drivers {
	return Drivers{newStore(
		func(d *model.Driver) *int64 { return &d.ID },
		func(d model.Driver) model.Driver { return d },
	)}
}

func (d Drivers) Conn(repo.Conn) repo.DriversConnQueryer {
	return d
}

func (d Drivers) Tx(repo.Tx) repo.DriversTxQueryer {
	return d
}

func (d Drivers) FindByPerk(_ context.Context, p model.DriverPerk) ([]model.Driver, error) {
	return d.filter(func(m *model.Driver) bool {
		return m.Perk == p
	}), nil
}

func (d Drivers) FindByNationality(_ context.Context, nationality string) ([]model.Driver, error) {
	return d.filter(func(m *model.Driver) bool {
		return m.Nationality == nationality
	}), nil
}

// Races is an in-memory repo.Races implementation.
type Races struct {
	*Store[model.Race]
}

func NewRaces() Races {
	return Races{newStore(
		func(r *model.Race) *int64 { return &r.ID },
		func(r model.Race) model.Race {
			if r.Location != nil {
				l := *r.Location
				r.Location = &l
			}
			r.Car1ID = cloneID(r.Car1ID)
			r.Car2ID = cloneID(r.Car2ID)
			return r
		},
	)}
}

func (r Races) Conn(repo.Conn) repo.RacesConnQueryer {
	return r
}

func (r Races) Tx(repo.Tx) repo.RacesTxQueryer {
	return r
}

func (r Races) FindByIDForUpdate(ctx context.Context, id int64) (*model.Race, error) {
	return r.FindByID(ctx, id)
}

func (r Races) FindByLocation(_ context.Context, country, city, street string) ([]model.Race, error) {
	eq := func(a, b string) bool { return a != "" && a == b }
	return r.filter(func(m *model.Race) bool {
		l := m.Location
		return l != nil && (eq(country, l.Country) ||
			eq(city, l.City) || eq(street, l.Street))
	}), nil
}

func (r Races) FindByCarID(_ context.Context, carID int64) ([]model.Race, error) {
	is := func(id *int64) bool { return id != nil && *id == carID }
	return r.filter(func(m *model.Race) bool {
		return is(m.Car1ID) || is(m.Car2ID)
	}), nil
}
