// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package componentsrs realizes the components resource, delegating
// the components REST APIs to the components use cases.
package componentsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/usecase/componentsuc"
)

type resource struct {
	components *componentsuc.UseCase
}

// Register registers the components REST APIs on r, including the
// CRUD endpoints of /components and /components/:id plus the
// /components/type/:type and /components/manufacturer/:manufacturer
// search endpoints.
func Register(r *gin.RouterGroup, components *componentsuc.UseCase) {
	rs := &resource{components: components}
	r.POST("components", rs.Create)
	r.GET("components", rs.FindAll)
	r.DELETE("components", rs.DeleteAll)
	r.GET("components/:id", rs.FindByID)
	r.PUT("components/:id", rs.Update)
	r.DELETE("components/:id", rs.DeleteByID)
	r.GET("components/type/:type", rs.FindByType)
	r.GET("components/manufacturer/:manufacturer", rs.FindByManufacturer)
}

func (rs *resource) Create(c *gin.Context) {
	cmp := rs.DserComponent(c)
	if cmp == nil {
		return
	}
	cmp, err := rs.components.Create(c, cmp)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Created(c, cmp.ID)
	c.JSON(http.StatusCreated, SerComponent(cmp))
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	cmp := rs.DserComponent(c)
	if cmp == nil {
		return
	}
	cmp.ID = id
	cmp, err := rs.components.Update(c, cmp)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComponent(cmp))
}

func (rs *resource) FindByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	cmp, err := rs.components.FindByID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComponent(cmp))
}

func (rs *resource) FindAll(c *gin.Context) {
	cmps, err := rs.components.FindAll(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComponents(cmps))
}

// FindByType lists components of a type. Unknown type names are
// passed as the invalid type, so the use case rejects them.
func (rs *resource) FindByType(c *gin.Context) {
	t, _ := model.ParseComponentType(c.Param("type"))
	cmps, err := rs.components.FindByType(c, t)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComponents(cmps))
}

func (rs *resource) FindByManufacturer(c *gin.Context) {
	cmps, err := rs.components.FindByManufacturer(c, c.Param("manufacturer"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerComponents(cmps))
}

func (rs *resource) DeleteByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	if err := rs.components.DeleteByID(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteAll(c *gin.Context) {
	if err := rs.components.DeleteAll(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
