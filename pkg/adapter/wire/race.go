// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package wire

import (
	"fmt"
	"time"

	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

type Race struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Location *Location `json:"location"`
	Date     string    `json:"date"` // formatted as YYYY-MM-DD
	Car1ID   *int64    `json:"car1Id"`
	Car2ID   *int64    `json:"car2Id"`
}

type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

func NewRace(r *model.Race) Race {
	return Race{
		ID:       r.ID,
		Name:     r.Name,
		Location: newLocation(r.Location),
		Date:     formatDate(r.Date),
		Car1ID:   r.Car1ID,
		Car2ID:   r.Car2ID,
	}
}

// Model converts r to a model. An empty date is kept as a zero time,
// so it is reported by the validation, while a malformed date causes
// an error.
func (r *Race) Model() (*model.Race, error) {
	m := &model.Race{
		ID:     r.ID,
		Name:   r.Name,
		Car1ID: r.Car1ID,
		Car2ID: r.Car2ID,
	}
	if l := r.Location; l != nil {
		m.Location = &model.Location{
			Country: l.Country, City: l.City, Street: l.Street,
		}
	}
	if r.Date != "" {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing race date: %w", err)
		}
		m.Date = d
	}
	return m, nil
}

type RaceView struct {
	Name     string    `json:"name"`
	Location *Location `json:"location"`
	Date     string    `json:"date"`
	Car1     *CarView  `json:"car1"`
	Car2     *CarView  `json:"car2"`
}

type CarView struct {
	MainDriver  *DriverView      `json:"mainDriver"`
	CarMake     string           `json:"carMake"`
	TestDrivers []*DriverView    `json:"testDrivers"`
	Components  []*ComponentView `json:"components"`
}

type DriverView struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Nationality string `json:"nationality"`
	Perk        string `json:"perk"`
}

type ComponentView struct {
	Weight       int    `json:"weight"`
	Price        int    `json:"price"`
	Manufacturer string `json:"manufacturer"`
	Version      string `json:"version"`
	Type         string `json:"type"`
}

func NewRaceView(v *model.RaceView) RaceView {
	return RaceView{
		Name:     v.Name,
		Location: newLocation(v.Location),
		Date:     formatDate(v.Date),
		Car1:     newCarView(v.Car1),
		Car2:     newCarView(v.Car2),
	}
}

func newCarView(v *model.CarView) *CarView {
	if v == nil {
		return nil
	}
	return &CarView{
		MainDriver:  newDriverView(v.MainDriver),
		CarMake:     v.CarMake,
		TestDrivers: lo.Map(v.TestDrivers, func(d *model.DriverView, _ int) *DriverView { return newDriverView(d) }),
		Components:  lo.Map(v.Components, func(c *model.ComponentView, _ int) *ComponentView { return newComponentView(c) }),
	}
}

func newDriverView(v *model.DriverView) *DriverView {
	if v == nil {
		return nil
	}
	return &DriverView{
		Name:        v.Name,
		Surname:     v.Surname,
		Nationality: v.Nationality,
		Perk:        enumString(v.Perk),
	}
}

func newComponentView(v *model.ComponentView) *ComponentView {
	if v == nil {
		return nil
	}
	return &ComponentView{
		Weight:       v.Weight,
		Price:        v.Price,
		Manufacturer: v.Manufacturer,
		Version:      v.Version,
		Type:         enumString(v.Type),
	}
}

func newLocation(l *model.Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{Country: l.Country, City: l.City, Street: l.Street}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}
