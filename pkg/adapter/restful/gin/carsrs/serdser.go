// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

// DserCar reads a car from the JSON request body. The body id is
// ignored since it is either assigned by the database or taken from
// the path parameters.
func (rs *resource) DserCar(c *gin.Context) *model.Car {
	req := &wire.Car{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	car := req.Model()
	car.ID = 0
	return car
}

func SerCar(car *model.Car) wire.Car {
	return wire.NewCar(car)
}

func SerCars(cars []model.Car) []wire.Car {
	return lo.Map(cars, func(car model.Car, _ int) wire.Car {
		return wire.NewCar(&car)
	})
}
