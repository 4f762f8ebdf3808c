// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/pitlane/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn is one connection of a Pool which is held during a
// repo.ConnHandler call.
type Conn struct {
	*gorm.DB
}

// Tx runs f in a transaction. It is committed if f returns nil and is
// rolled back if f returns an error or panics. The panic is turned into
// an error, so it does not escape the repository layer.
func (c *Conn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panicked: %v", r)
		}
		if err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				err = fmt.Errorf("%w, rollback: %w", err, rbErr)
			}
			return
		}
		if err = tx.Commit().Error; err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{DB: tx})
}

func (c *Conn) Ping(ctx context.Context) error {
	return ping(ctx, c.DB)
}

func (c *Conn) IsConn() {
}

// GORM returns the connection as a *gorm.DB which uses ctx.
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}
