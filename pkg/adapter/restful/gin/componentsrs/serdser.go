// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package componentsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/samber/lo"
)

func (rs *resource) DserComponent(c *gin.Context) *model.Component {
	req := &wire.Component{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	cmp := req.Model()
	cmp.ID = 0
	return cmp
}

func SerComponent(cmp *model.Component) wire.Component {
	return wire.NewComponent(cmp)
}

func SerComponents(cmps []model.Component) []wire.Component {
	return lo.Map(cmps, func(cmp model.Component, _ int) wire.Component {
		return wire.NewComponent(&cmp)
	})
}
