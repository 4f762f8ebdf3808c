// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Car models a racing car which is owned by the car service.
// Drivers and components are referenced by ID only. The TestDriverIDs
// and ComponentIDs slices represent sets, so they contain no duplicate
// IDs and keep the order in which IDs were first seen. Repositories
// return an empty set as a nil slice.
type Car struct {
	ID            int64
	MainDriverID  *int64  // optional main driver reference
	CarMake       string  // required, non-empty
	TestDriverIDs []int64 // optional set of test driver references
	ComponentIDs  []int64 // required, non-empty set of components
}
