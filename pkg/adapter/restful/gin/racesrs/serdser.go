// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

type locationQuery struct {
	Country string `form:"country"`
	City    string `form:"city"`
	Street  string `form:"street"`
}

type carIDQuery struct {
	CarID *int64 `form:"carId" binding:"required"`
}

// DserRace reads a race from the JSON request body. A malformed date
// is reported as a 400 response.
func (rs *resource) DserRace(c *gin.Context) *model.Race {
	req := &wire.Race{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	race, err := req.Model()
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "date", "Race date must be formatted as YYYY-MM-DD.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	race.ID = 0
	return race
}

func (rs *resource) DserLocationQuery(c *gin.Context) *locationQuery {
	req := &locationQuery{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserCarIDQuery(c *gin.Context) (int64, bool) {
	req := &carIDQuery{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return 0, false
	}
	return *req.CarID, true
}

func SerRace(race *model.Race) wire.Race {
	return wire.NewRace(race)
}

func SerRaces(races []model.Race) []wire.Race {
	return lo.Map(races, func(race model.Race, _ int) wire.Race {
		return wire.NewRace(&race)
	})
}

func SerRaceViews(views []model.RaceView) []wire.RaceView {
	return lo.Map(views, func(v model.RaceView, _ int) wire.RaceView {
		return wire.NewRaceView(&v)
	})
}
