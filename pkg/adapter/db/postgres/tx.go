// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Tx is a READ-COMMITTED transaction which is started by Conn.Tx.
// Statements which lock rows (SELECT ... FOR UPDATE) keep their locks
// until the transaction ends.
type Tx struct {
	*gorm.DB
}

func (tx *Tx) Ping(ctx context.Context) error {
	return ping(ctx, tx.DB)
}

func (tx *Tx) IsTx() {
}

// GORM returns the transaction as a *gorm.DB which uses ctx.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
