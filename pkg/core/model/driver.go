// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Driver models a racing driver which is owned by the driver service.
type Driver struct {
	ID          int64
	Name        string
	Surname     string
	Nationality string
	Perk        DriverPerk
}
