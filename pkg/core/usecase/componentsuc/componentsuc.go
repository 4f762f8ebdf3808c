// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package componentsuc contains the components UseCase which supports
// the CRUD use cases of car components. Components are referenced by
// cars using their IDs, but this service is never told about those
// references, so a component may be deleted while some cars still
// refer to it.
package componentsuc

import (
	"context"
	"errors"

	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
)

// UseCase represents a components use case. It holds a database
// connection pool and the components repository instance.
type UseCase struct {
	pool         repo.Pool
	componentsrp repo.Components
}

// New instantiates a components use case.
func New(p repo.Pool, c repo.Components) *UseCase {
	return &UseCase{pool: p, componentsrp: c}
}

// Create validates and stores the c component, returning the stored
// instance with its assigned ID.
func (uc *UseCase) Create(ctx context.Context, c *model.Component) (comp *model.Component, err error) {
	if err = Validate(c); err != nil {
		return nil, err
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comp, err = uc.componentsrp.Conn(cn).Create(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "component created", log.ID("id", comp.ID))
	return comp, nil
}

// Update validates c and overwrites the component with the same ID.
// Validation errors take precedence over the not-found error.
func (uc *UseCase) Update(ctx context.Context, c *model.Component) (comp *model.Component, err error) {
	if err = Validate(c); err != nil {
		return nil, err
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comp, err = uc.componentsrp.Conn(cn).Update(ctx, c)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, cerr.Newf(cerr.NotFound,
			"Cannot update, component not found with id: %d", c.ID,
		)
	}
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "component updated", log.ID("id", comp.ID))
	return comp, nil
}

func (uc *UseCase) FindByID(ctx context.Context, id int64) (comp *model.Component, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comp, err = uc.componentsrp.Conn(cn).FindByID(ctx, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, cerr.Newf(cerr.NotFound,
			"Component not found with id: %d", id,
		)
	}
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (uc *UseCase) FindAll(ctx context.Context) (comps []model.Component, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comps, err = uc.componentsrp.Conn(cn).FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comps, nil
}

// FindByType returns all components of the t type.
func (uc *UseCase) FindByType(ctx context.Context, t model.ComponentType) (comps []model.Component, err error) {
	if err = t.Validate(); err != nil {
		return nil, cerr.Validation(err)
	}
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comps, err = uc.componentsrp.Conn(cn).FindByType(ctx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comps, nil
}

// FindByManufacturer returns all components which their manufacturer
// exactly matches the given manufacturer.
func (uc *UseCase) FindByManufacturer(ctx context.Context, manufacturer string) (comps []model.Component, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		comps, err = uc.componentsrp.Conn(cn).FindByManufacturer(ctx, manufacturer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comps, nil
}

func (uc *UseCase) DeleteByID(ctx context.Context, id int64) error {
	err := uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) error {
		return uc.componentsrp.Conn(cn).DeleteByID(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return cerr.Newf(cerr.NotFound,
			"Cannot delete, component not found with id: %d", id,
		)
	}
	if err != nil {
		return err
	}
	log.Info(ctx, "component deleted", log.ID("id", id))
	return nil
}

func (uc *UseCase) DeleteAll(ctx context.Context) error {
	var n int64
	err := uc.pool.Conn(ctx, func(ctx context.Context, cn repo.Conn) (err error) {
		n, err = uc.componentsrp.Conn(cn).DeleteAll(ctx)
		return err
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "all components deleted", log.Count(n))
	return nil
}
