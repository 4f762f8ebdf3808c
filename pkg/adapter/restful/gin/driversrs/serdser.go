// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package driversrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

func (rs *resource) DserDriver(c *gin.Context) *model.Driver {
	req := &wire.Driver{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	d := req.Model()
	d.ID = 0
	return d
}

func SerDriver(d *model.Driver) wire.Driver {
	return wire.NewDriver(d)
}

func SerDrivers(ds []model.Driver) []wire.Driver {
	return lo.Map(ds, func(d model.Driver, _ int) wire.Driver {
		return wire.NewDriver(&d)
	})
}
