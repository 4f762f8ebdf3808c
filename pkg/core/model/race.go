// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Race models a race event which is owned by the race service.
// The Date only keeps a calendar day (in UTC) and its zero value
// indicates a missing date. The Car1ID and Car2ID slots refer to cars
// which are owned by the car service.
type Race struct {
	ID       int64
	Name     string
	Location *Location
	Date     time.Time
	Car1ID   *int64
	Car2ID   *int64
}

// Location is the embedded value object of a Race.
// All of its fields must be non-empty when a location is present.
type Location struct {
	Country string
	City    string
	Street  string
}

// IsComplete reports whether all fields of the l location are set.
func (l Location) IsComplete() bool {
	return l.Country != "" && l.City != "" && l.Street != ""
}

// DateLayout is the calendar date format of race dates.
const DateLayout = time.DateOnly
