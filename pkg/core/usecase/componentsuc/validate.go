// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package componentsuc

import (
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/model"
)

// Validate checks the local field constraints of the c component and
// returns the first violation as a cerr.Validation error.
func Validate(c *model.Component) error {
	var msg string
	switch {
	case c.Weight <= 0:
		msg = "Component weight must be greater than 0"
	case c.Price <= 0:
		msg = "Component price must be greater than 0"
	case c.Manufacturer == "":
		msg = "Component manufacturer must not be empty"
	case c.Type.Validate() != nil:
		msg = "Component type must not be empty"
	default:
		return nil
	}
	return cerr.Validation(errors.New(msg))
}
