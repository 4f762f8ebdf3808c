// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
)

// TxHandler runs statements in a transaction. Returning an error (or
// panicking) rolls the transaction back, otherwise it will be committed.
type TxHandler func(context.Context, Tx) error

// Conn is a database connection which is acquired from a Pool for the
// duration of one ConnHandler call. It must not be used concurrently.
type Conn interface {
	Queryer

	// Tx begins a READ-COMMITTED transaction and passes it to handler.
	Tx(ctx context.Context, handler TxHandler) error

	IsConn()
}
