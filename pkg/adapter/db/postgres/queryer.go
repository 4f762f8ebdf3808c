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

// Queryer is the type constraint of the generic query functions in
// the repository packages, so they may run on either a connection or
// a transaction.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}

// ping runs a trivial statement on gdb. A *sql.DB level PingContext
// would check an arbitrary pooled connection instead of the one which
// is held by a Conn or Tx.
func ping(ctx context.Context, gdb *gorm.DB) error {
	var one int
	if err := gdb.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
