// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// RangeError reports a setting whose value is outside of its range.
type RangeError[T cmp.Ordered] struct {
	Name     string // like usecases.races.fetch-parallelism
	Value    T
	Min, Max *T // nil for an unbounded side
}

func (e *RangeError[T]) Error() string {
	switch {
	case e.Min != nil && e.Max != nil:
		return fmt.Sprintf("%s: %v is not in [%v, %v]",
			e.Name, e.Value, *e.Min, *e.Max,
		)
	case e.Min != nil:
		return fmt.Sprintf("%s: %v is less than %v", e.Name, e.Value, *e.Min)
	default:
		return fmt.Sprintf("%s: %v is greater than %v", e.Name, e.Value, *e.Max)
	}
}

// VerifyRange returns a *RangeError if value is not nil and falls out
// of the [minb, maxb] range. A nil bound leaves that side open.
func VerifyRange[T cmp.Ordered](name string, value, minb, maxb *T) error {
	if value == nil {
		return nil
	}
	v := *value
	if (minb != nil && v < *minb) || (maxb != nil && v > *maxb) {
		return &RangeError[T]{Name: name, Value: v, Min: minb, Max: maxb}
	}
	return nil
}
