// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// DriverPerk specifies the special ability of a driver.
// It is (de)serialized as an upper-case string in the adapter layer.
type DriverPerk int

// Valid values for the DriverPerk enum.
const (
	DriverPerkInvalid DriverPerk = iota // zero value is invalid

	DriverPerkFuelSaving
	DriverPerkOvertaker
	DriverPerkRainMaster
	DriverPerkHammerTime
)

// ErrUnknownDriverPerk indicates that a given string may not be parsed
// as a known driver perk.
var ErrUnknownDriverPerk = errors.New("unknown driver perk")

// DriverPerkError indicates an invalid driver perk value.
type DriverPerkError int

func (e DriverPerkError) Error() string {
	return fmt.Sprintf("invalid driver perk: %d", e)
}

// Validate returns nil if DriverPerk value is valid and a
// DriverPerkError otherwise.
func (p DriverPerk) Validate() error {
	switch p {
	case DriverPerkFuelSaving, DriverPerkOvertaker,
		DriverPerkRainMaster, DriverPerkHammerTime:
		return nil
	default:
		return DriverPerkError(p)
	}
}

// String converts the DriverPerk enum to its wire representation.
// Invalid driver perks cause a panic.
func (p DriverPerk) String() string {
	switch p {
	case DriverPerkFuelSaving:
		return "FUEL_SAVING"
	case DriverPerkOvertaker:
		return "OVERTAKER"
	case DriverPerkRainMaster:
		return "RAIN_MASTER"
	case DriverPerkHammerTime:
		return "HAMMER_TIME"
	default:
		panic(DriverPerkError(p))
	}
}

// ParseDriverPerk parses the given string and returns a DriverPerk.
// For invalid strings, DriverPerkInvalid and ErrUnknownDriverPerk
// will be returned.
func ParseDriverPerk(s string) (DriverPerk, error) {
	switch s {
	case "FUEL_SAVING":
		return DriverPerkFuelSaving, nil
	case "OVERTAKER":
		return DriverPerkOvertaker, nil
	case "RAIN_MASTER":
		return DriverPerkRainMaster, nil
	case "HAMMER_TIME":
		return DriverPerkHammerTime, nil
	default:
		return DriverPerkInvalid, ErrUnknownDriverPerk
	}
}
