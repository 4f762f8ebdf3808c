// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the races use case.
type Option func(uc *UseCase) error

// WithFetchParallelism option configures a races UseCase instance in
// order to resolve up to n remote references concurrently while
// building the race views. The default value of 1 resolves them one
// at a time. This option may be passed to the New() function.
func WithFetchParallelism(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("parallelism (%d) is not positive", n)
		}
		if uc.fetchParallelism != 0 {
			return errors.New("parallelism is already configured")
		}
		uc.fetchParallelism = n
		return nil
	}
}
