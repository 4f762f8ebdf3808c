// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package racesrs realizes the races resource, delegating the races
// REST APIs to the races use cases. In addition to the CRUD endpoints,
// it serves the car assignment endpoints, the location and car search
// endpoints, and the /races/withCars aggregated view.
package racesrs

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/usecase/racesuc"
)

type resource struct {
	races *racesuc.UseCase
}

func Register(r *gin.RouterGroup, races *racesuc.UseCase) {
	rs := &resource{races: races}
	r.POST("races", rs.Create)
	r.GET("races", rs.FindAll)
	r.DELETE("races", rs.DeleteAll)
	r.GET("races/withCars", rs.FindAllWithCars)
	r.GET("races/location", rs.FindByLocation)
	r.GET("races/car/:carId", rs.FindByCarID)
	r.GET("races/:id", rs.FindByID)
	r.PUT("races/:id", rs.Update)
	r.DELETE("races/:id", rs.DeleteByID)
	r.PUT("races/:id/assignCarOne", rs.AssignCarOne)
	r.PUT("races/:id/assignCarTwo", rs.AssignCarTwo)
}

func (rs *resource) Create(c *gin.Context) {
	race := rs.DserRace(c)
	if race == nil {
		return
	}
	race, err := rs.races.Create(c, race)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Created(c, race.ID)
	c.JSON(http.StatusCreated, SerRace(race))
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	race := rs.DserRace(c)
	if race == nil {
		return
	}
	race.ID = id
	race, err := rs.races.Update(c, race)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRace(race))
}

func (rs *resource) FindByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	race, err := rs.races.FindByID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRace(race))
}

func (rs *resource) FindAll(c *gin.Context) {
	races, err := rs.races.FindAll(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRaces(races))
}

func (rs *resource) FindAllWithCars(c *gin.Context) {
	views, err := rs.races.FindAllWithCars(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRaceViews(views))
}

func (rs *resource) FindByLocation(c *gin.Context) {
	req := rs.DserLocationQuery(c)
	if req == nil {
		return
	}
	races, err := rs.races.FindByLocation(c, req.Country, req.City, req.Street)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRaces(races))
}

func (rs *resource) FindByCarID(c *gin.Context) {
	carID, ok := serdser.IDParam(c, "carId")
	if !ok {
		return
	}
	races, err := rs.races.FindByCarID(c, carID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRaces(races))
}

func (rs *resource) AssignCarOne(c *gin.Context) {
	rs.assignCar(c, rs.races.AssignCarOne)
}

func (rs *resource) AssignCarTwo(c *gin.Context) {
	rs.assignCar(c, rs.races.AssignCarTwo)
}

func (rs *resource) assignCar(
	c *gin.Context,
	assign func(ctx context.Context, raceID, carID int64) (*model.Race, error),
) {
	raceID, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	carID, ok := rs.DserCarIDQuery(c)
	if !ok {
		return
	}
	race, err := assign(c, raceID, carID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerRace(race))
}

func (rs *resource) DeleteByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	if err := rs.races.DeleteByID(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteAll(c *gin.Context) {
	if err := rs.races.DeleteAll(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
