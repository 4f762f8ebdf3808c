// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/pitlane/pkg/core/model"
)

type ComponentsConnQueryer interface {
	ComponentsQueryer
}

type ComponentsTxQueryer interface {
	ComponentsQueryer
}

type ComponentsQueryer interface {
	EntityQueryer[model.Component]
	FindByType(ctx context.Context, t model.ComponentType) ([]model.Component, error)
	FindByManufacturer(ctx context.Context, manufacturer string) ([]model.Component, error)
}

type Components interface {
	Conn(Conn) ComponentsConnQueryer
	Tx(Tx) ComponentsTxQueryer
}
