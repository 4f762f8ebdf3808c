// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx is a database transaction. Repositories which need row locks,
// such as the races repository for assigning cars, only accept it.
type Tx interface {
	Queryer

	// IsTx keeps a Conn from implementing the Tx interface.
	IsTx()
}
