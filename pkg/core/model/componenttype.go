// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ComponentType specifies the category of a car component.
// Although this enum is numeric, it is (de)serialized as an upper-case
// string in the adapter layer.
type ComponentType int

// Valid values for the ComponentType enum.
const (
	ComponentTypeInvalid ComponentType = iota // zero value is invalid

	ComponentTypeEngine
	ComponentTypeGear
	ComponentTypeSpoiler
	ComponentTypeSuspension
)

// ErrUnknownComponentType indicates that a given string may not be
// parsed as a known component type. The caller of ParseComponentType
// already knows the invalid string, so it is not repeated here.
var ErrUnknownComponentType = errors.New("unknown component type")

// ComponentTypeError indicates an invalid component type value.
type ComponentTypeError int

// Error implements the error interface, returning a string
// representation of the ComponentTypeError.
func (e ComponentTypeError) Error() string {
	return fmt.Sprintf("invalid component type: %d", e)
}

// Validate returns nil if ComponentType value is valid. For invalid
// values, an instance of the ComponentTypeError will be returned.
func (t ComponentType) Validate() error {
	switch t {
	case ComponentTypeEngine, ComponentTypeGear,
		ComponentTypeSpoiler, ComponentTypeSuspension:
		return nil
	default:
		return ComponentTypeError(t)
	}
}

// String converts the ComponentType enum to its wire representation.
// Invalid component types cause a panic.
func (t ComponentType) String() string {
	switch t {
	case ComponentTypeEngine:
		return "ENGINE"
	case ComponentTypeGear:
		return "GEAR"
	case ComponentTypeSpoiler:
		return "SPOILER"
	case ComponentTypeSuspension:
		return "SUSPENSION"
	default:
		panic(ComponentTypeError(t))
	}
}

// ParseComponentType parses the given string and returns a
// ComponentType. For invalid strings, ComponentTypeInvalid and
// ErrUnknownComponentType will be returned.
func ParseComponentType(s string) (ComponentType, error) {
	switch s {
	case "ENGINE":
		return ComponentTypeEngine, nil
	case "GEAR":
		return ComponentTypeGear, nil
	case "SPOILER":
		return ComponentTypeSpoiler, nil
	case "SUSPENSION":
		return ComponentTypeSuspension, nil
	default:
		return ComponentTypeInvalid, ErrUnknownComponentType
	}
}
