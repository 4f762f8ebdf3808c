// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memrp is an internal helper for the test packages.
// It provides in-memory implementations of the repo.Pool connections
// pool and the entity repositories, so use cases and resources may be
// tested without a PostgreSQL DBMS server. Stored entities are deep
// copied on their way in and out, so callers may not alias them.
package memrp

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/momeni/pitlane/pkg/core/repo"
)

// Pool is an in-memory repo.Pool. Its connections and transactions
// only exist to be passed to the repositories. Transactions are not
// isolated and never roll back. A Pool with a non-nil Down error fails
// all Conn calls with that error.
type Pool struct {
	Down error
}

func (p Pool) Conn(ctx context.Context, h repo.ConnHandler) error {
	if p.Down != nil {
		return p.Down
	}
	return h(ctx, conn{})
}

type conn struct{}

func (conn) Ping(context.Context) error {
	return nil
}

func (conn) Tx(ctx context.Context, h repo.TxHandler) error {
	return h(ctx, tx{})
}

func (conn) IsConn() {
}

type tx struct {
	conn
}

func (tx) IsTx() {
}

// Store of M keeps entities of the M model type keyed by their IDs
// and implements the repo.EntityQueryer[M] interface.
type Store[M any] struct {
	mu     sync.Mutex
	lastID int64
	rows   map[int64]M

	id    func(m *M) *int64 // returns address of the ID field
	clone func(m M) M       // deep copies m
}

func newStore[M any](id func(*M) *int64, clone func(M) M) *Store[M] {
	return &Store[M]{rows: make(map[int64]M), id: id, clone: clone}
}

func (s *Store[M]) Create(_ context.Context, m *M) (*M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	c := s.clone(*m)
	*s.id(&c) = s.lastID
	s.rows[s.lastID] = c
	out := s.clone(c)
	return &out, nil
}

func (s *Store[M]) Update(_ context.Context, m *M) (*M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := *s.id(m)
	if _, ok := s.rows[id]; !ok {
		return nil, fmt.Errorf("update %d: %w", id, repo.ErrNotFound)
	}
	s.rows[id] = s.clone(*m)
	out := s.clone(*m)
	return &out, nil
}

func (s *Store[M]) FindByID(_ context.Context, id int64) (*M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("find %d: %w", id, repo.ErrNotFound)
	}
	out := s.clone(m)
	return &out, nil
}

func (s *Store[M]) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[id]
	return ok, nil
}

func (s *Store[M]) FindAll(context.Context) ([]M, error) {
	return s.filter(func(*M) bool { return true }), nil
}

func (s *Store[M]) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("delete %d: %w", id, repo.ErrNotFound)
	}
	delete(s.rows, id)
	return nil
}

func (s *Store[M]) DeleteAll(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.rows))
	clear(s.rows)
	return n, nil
}

// filter returns deep copies of matching entities ordered by their IDs.
func (s *Store[M]) filter(match func(m *M) bool) []M {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]M, 0, len(s.rows))
	for _, id := range slices.Sorted(maps.Keys(s.rows)) {
		m := s.rows[id]
		if match(&m) {
			out = append(out, s.clone(m))
		}
	}
	return out
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// cloneIDs copies an ID set, returning an empty set as nil like the
// PostgreSQL repositories do.
func cloneIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	return slices.Clone(ids)
}
