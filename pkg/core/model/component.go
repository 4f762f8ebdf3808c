// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Component models a car part which is owned by the component service.
type Component struct {
	ID           int64
	Weight       int // must be positive
	Price        int // must be positive
	Manufacturer string
	Version      string
	Type         ComponentType
}
