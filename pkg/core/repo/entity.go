// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"errors"
)

// ErrNotFound indicates that no row matched the given entity ID.
// Repositories return it (possibly wrapped) from the FindByID,
// Update, and DeleteByID methods, so use cases can report a not-found
// error with their own entity specific message.
var ErrNotFound = errors.New("entity not found")

// EntityQueryer of M is the common set of CRUD queries which all
// entity repositories support. The M type parameter is a model type
// with an int64 ID field, such as model.Car.
type EntityQueryer[M any] interface {
	// Create inserts m and returns the stored entity including its
	// freshly assigned ID. The ID of m itself is ignored.
	Create(ctx context.Context, m *M) (*M, error)

	// Update overwrites all locally-owned fields of the entity with
	// the same ID as m. ErrNotFound is returned if no such row exists.
	Update(ctx context.Context, m *M) (*M, error)

	FindByID(ctx context.Context, id int64) (*M, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context) ([]M, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (count int64, err error)
}
