// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the
// cars use cases respectively.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. POST, GET, and DELETE requests to /cars
//     in order to create one, list all, or delete all cars,
//  2. GET, PUT, and DELETE requests to /cars/:id
//     in order to read, replace, or delete one car,
//  3. GET requests to /cars/carMake/:carMake and
//     /cars/mainDriver/:mainDriverId in order to search cars.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.POST("cars", rs.Create)
	r.GET("cars", rs.FindAll)
	r.DELETE("cars", rs.DeleteAll)
	r.GET("cars/:id", rs.FindByID)
	r.PUT("cars/:id", rs.Update)
	r.DELETE("cars/:id", rs.DeleteByID)
	r.GET("cars/carMake/:carMake", rs.FindByCarMake)
	r.GET("cars/mainDriver/:mainDriverId", rs.FindByMainDriverID)
}

func (rs *resource) Create(c *gin.Context) {
	car := rs.DserCar(c)
	if car == nil {
		return
	}
	car, err := rs.cars.Create(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	serdser.Created(c, car.ID)
	c.JSON(http.StatusCreated, SerCar(car))
}

func (rs *resource) Update(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	car := rs.DserCar(c)
	if car == nil {
		return
	}
	car.ID = id
	car, err := rs.cars.Update(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCar(car))
}

func (rs *resource) FindByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	car, err := rs.cars.FindByID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCar(car))
}

func (rs *resource) FindAll(c *gin.Context) {
	cars, err := rs.cars.FindAll(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCars(cars))
}

func (rs *resource) FindByCarMake(c *gin.Context) {
	cars, err := rs.cars.FindByCarMake(c, c.Param("carMake"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCars(cars))
}

func (rs *resource) FindByMainDriverID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "mainDriverId")
	if !ok {
		return
	}
	cars, err := rs.cars.FindByMainDriverID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCars(cars))
}

func (rs *resource) DeleteByID(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	if err := rs.cars.DeleteByID(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) DeleteAll(c *gin.Context) {
	if err := rs.cars.DeleteAll(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
