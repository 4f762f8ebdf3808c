// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
)

// ConnHandler uses a connection. The connection is released after it
// returns, so it must not be retained.
type ConnHandler func(context.Context, Conn) error

// Pool hands out database connections. The use cases acquire one
// connection per operation and never keep it between operations.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}

// Ping acquires a connection from p and verifies that it is alive.
func Ping(ctx context.Context, p Pool) error {
	return p.Conn(ctx, func(ctx context.Context, c Conn) error {
		return c.Ping(ctx)
	})
}
