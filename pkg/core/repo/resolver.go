// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Resolver of T dereferences weak references, i.e., IDs of entities
// which are owned by a sibling service. There is no lifetime coupling
// between a reference and its target, so a previously resolvable ID
// may become unresolvable at any time.
//
// Implementations report a transport failure (no response could be
// obtained from the owning service) as a cerr.ExternalCall error.
// All other unsuccessful outcomes are reported as absence.
type Resolver[T any] interface {
	// Exists returns true only if the owning service confirmed the
	// presence of id. Any non-transport failure (including malformed
	// bodies) yields false and a nil error.
	Exists(ctx context.Context, id int64) (bool, error)

	// Fetch returns the entity with id, or a nil entity and a nil
	// error if the owning service did not answer successfully.
	Fetch(ctx context.Context, id int64) (*T, error)
}
