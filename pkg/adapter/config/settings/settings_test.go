// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/pitlane/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationYAML(t *testing.T) {
	var s struct {
		Timeout *settings.Duration `yaml:"timeout"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1m30s\n"), &s))
	require.NotNil(t, s.Timeout)
	assert.Equal(t, 90*time.Second, s.Timeout.Std())

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "timeout: 1m30s\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("timeout: -1s\n"), &s))
	assert.Error(t, yaml.Unmarshal([]byte("timeout: soon\n"), &s))
}

func TestDefaults(t *testing.T) {
	var enabled *bool
	settings.Default(&enabled, true)
	require.NotNil(t, enabled)
	assert.True(t, *enabled)
	*enabled = false
	settings.Default(&enabled, true)
	assert.False(t, *enabled, "an explicit false must be kept")

	port := 0
	settings.DefaultZero(&port, 5432)
	assert.Equal(t, 5432, port)
	settings.DefaultZero(&port, 1)
	assert.Equal(t, 5432, port)
}

func TestVerifyRange(t *testing.T) {
	lo, hi := 1, 64
	for v, ok := range map[int]bool{0: false, 1: true, 64: true, 65: false} {
		err := settings.VerifyRange("parallelism", &v, &lo, &hi)
		assert.Equal(t, ok, err == nil, v)
	}
	assert.NoError(t, settings.VerifyRange[int]("parallelism", nil, &lo, &hi))

	v := 0
	err := settings.VerifyRange("parallelism", &v, &lo, nil)
	assert.EqualError(t, err, "parallelism: 0 is less than 1")
	v = 65
	err = settings.VerifyRange("parallelism", &v, &lo, &hi)
	assert.EqualError(t, err, "parallelism: 65 is not in [1, 64]")
	var re *settings.RangeError[int]
	assert.ErrorAs(t, err, &re)
}
