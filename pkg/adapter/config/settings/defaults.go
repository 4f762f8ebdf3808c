// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Default sets *t to point to v if it was nil. Optional settings are
// kept as pointers so an explicit false or zero value in the yaml file
// is not mistaken for a missing one.
func Default[T any](t **T, v T) {
	if *t == nil {
		*t = &v
	}
}

// DefaultZero replaces the zero value of *t with v.
func DefaultZero[T comparable](t *T, v T) {
	var zero T
	if *t == zero {
		*t = v
	}
}
