// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the value types and helper functions which
// are shared by the configuration sections, such as durations which
// may be written as "10s" in yaml files and environment variables.
package settings

import (
	"fmt"
	"log/slog"
	"time"
)

// Duration is a time.Duration which is (un)marshaled as text, like
// 1m30s, so it can be used in yaml files and environment variables.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText parses a non-negative duration.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	if dd < 0 {
		return fmt.Errorf("negative duration: %s", data)
	}
	*d = Duration(dd)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Duration) LogValue() slog.Value {
	return slog.DurationValue(time.Duration(d))
}
