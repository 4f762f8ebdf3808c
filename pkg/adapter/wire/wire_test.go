// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package wire_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarIDSetsAreDeduplicated(t *testing.T) {
	var w wire.Car
	require.NoError(t, json.Unmarshal([]byte(
		`{"carMake":"Ferrari","testDriverIds":[3,1,3],"componentIds":[5,5]}`,
	), &w))
	c := w.Model()
	assert.Nil(t, c.MainDriverID)
	assert.Equal(t, []int64{3, 1}, c.TestDriverIDs)
	assert.Equal(t, []int64{5}, c.ComponentIDs)
}

func TestCarWithoutIDSetsMarshalsEmptyArrays(t *testing.T) {
	b, err := json.Marshal(wire.NewCar(&model.Car{ID: 1, CarMake: "Alpine"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "mainDriverId": null, "carMake": "Alpine",
		"testDriverIds": [], "componentIds": []
	}`, string(b))
}

func TestEnumsOnTheWire(t *testing.T) {
	c := wire.Component{Weight: 10, Price: 20, Type: "GEAR"}
	assert.Equal(t, model.ComponentTypeGear, c.Model().Type)
	c.Type = "WING"
	assert.Equal(t, model.ComponentTypeInvalid, c.Model().Type)
	assert.Equal(t, "", wire.NewComponent(c.Model()).Type)

	d := wire.Driver{Name: "Lewis", Perk: "RAIN_MASTER"}
	assert.Equal(t, model.DriverPerkRainMaster, d.Model().Perk)
	assert.Equal(t, "RAIN_MASTER", wire.NewDriver(d.Model()).Perk)
}

func TestRaceDate(t *testing.T) {
	r := wire.Race{Name: "Monza", Date: "2024-09-01"}
	m, err := r.Model()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, "2024-09-01", wire.NewRace(m).Date)

	r.Date = ""
	m, err = r.Model()
	require.NoError(t, err)
	assert.True(t, m.Date.IsZero())

	r.Date = "01/09/2024"
	_, err = r.Model()
	assert.Error(t, err)
}

func TestRaceViewJSON(t *testing.T) {
	v := wire.NewRaceView(&model.RaceView{
		Name:     "Monza",
		Location: &model.Location{Country: "Italy", City: "Monza", Street: "Parco"},
		Date:     time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		Car1: &model.CarView{
			CarMake: "Ferrari",
			MainDriver: &model.DriverView{
				Name: "Charles", Surname: "Leclerc",
				Nationality: "Monaco", Perk: model.DriverPerkOvertaker,
			},
			TestDrivers: []*model.DriverView{nil},
			Components: []*model.ComponentView{{
				Weight: 1, Price: 2, Manufacturer: "Ferrari",
				Version: "v1", Type: model.ComponentTypeEngine,
			}},
		},
	})
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Monza",
		"location": {"country": "Italy", "city": "Monza", "street": "Parco"},
		"date": "2024-09-01",
		"car1": {
			"mainDriver": {
				"name": "Charles", "surname": "Leclerc",
				"nationality": "Monaco", "perk": "OVERTAKER"
			},
			"carMake": "Ferrari",
			"testDrivers": [null],
			"components": [{
				"weight": 1, "price": 2, "manufacturer": "Ferrari",
				"version": "v1", "type": "ENGINE"
			}]
		},
		"car2": null
	}`, string(b))
}
