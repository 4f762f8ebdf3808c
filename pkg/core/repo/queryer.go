// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
)

// Queryer is the common part of Conn and Tx. The statements themselves
// are issued by the entity repositories, which know how to run them on
// the adapter specific connection or transaction types.
type Queryer interface {
	// Ping verifies that the underlying database session is alive.
	Ping(ctx context.Context) error
}
