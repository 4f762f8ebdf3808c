// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package driversrs realizes the drivers resource, delegating the
// drivers REST APIs to the drivers use cases.
package driversrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/usecase/driversuc"
)

type resource struct {
	drivers *driversuc.UseCase
}

// Register registers the drivers REST APIs on r, including the CRUD
// endpoints of /drivers and /drivers/:id plus the /drivers/perk/:perk
// and /drivers/nationality/:nationality search endpoints.
func Register(r *gin.RouterGroup, drivers *driversuc.UseCase) {
	rs := &resource{drivers: drivers}
	r.POST("drivers", rs.Create)
	r.GET("drivers", rs.FindAll)
	r.DELETE("drivers", rs.DeleteAll)
	r.GET("drivers/:id", rs.FindByID)
	r.PUT("drivers/:id", rs.Update)
	r.DELETE("drivers/:id", rs.DeleteByID)
	r.GET("drivers/perk/:perk", rs.FindByPerk)
	r.GET("drivers/nationality/:nationality", rs.FindByNationality)
}

func (rs *resource) Create(c *gin.Context) {
	d := rs.DserDriver(c)
	if d == nil {
		return
	}
	d, err := rs.drivers.Create(c, d)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Created(c, d.ID)
	c.JSON(http.StatusCreated, SerDriver(d))
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	d := rs.DserDriver(c)
	if d == nil {
		return
	}
	d.ID = id
	d, err := rs.drivers.Update(c, d)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDriver(d))
}

func (rs *resource) FindByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	d, err := rs.drivers.FindByID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDriver(d))
}

func (rs *resource) FindAll(c *gin.Context) {
	ds, err := rs.drivers.FindAll(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDrivers(ds))
}

func (rs *resource) FindByPerk(c *gin.Context) {
	p, _ := model.ParseDriverPerk(c.Param("perk"))
	ds, err := rs.drivers.FindByPerk(c, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDrivers(ds))
}

func (rs *resource) FindByNationality(c *gin.Context) {
	ds, err := rs.drivers.FindByNationality(c, c.Param("nationality"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerDrivers(ds))
}

func (rs *resource) DeleteByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	if err := rs.drivers.DeleteByID(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteAll(c *gin.Context) {
	if err := rs.drivers.DeleteAll(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
