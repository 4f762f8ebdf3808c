// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesuc

import (
	"context"
	"fmt"

	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/repo"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// FindAllWithCars loads all races and returns one RaceView per race,
// in the same order, with their cars, drivers, and components resolved
// from the sibling services.
//
// Each race is resolved by a fetch plan in three phases. First, its
// distinct car IDs are fetched. Second, the distinct driver and
// component IDs of the fetched cars are fetched. Third, the views are
// assembled. IDs are deduplicated within one race, never across races,
// and nothing is cached between calls. So a race whose car1 and car2
// are the same car fetches that car (and its drivers and components)
// once, and a driver shared by both cars is fetched once, while the
// same driver in two different races is fetched once per race.
//
// Any resolver error aborts the whole call and no partial result is
// returned. An entity which the resolver could not find is embedded as
// a nil view (e.g., a nil Car1 or a nil member of TestDrivers).
func (races *UseCase) FindAllWithCars(ctx context.Context) ([]model.RaceView, error) {
	rs, err := races.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.RaceView, 0, len(rs))
	for i := range rs {
		v, err := races.raceView(ctx, &rs[i])
		if err != nil {
			return nil, fmt.Errorf("resolving race %d: %w", rs[i].ID, err)
		}
		views = append(views, *v)
	}
	log.Debug(ctx, "race views assembled", log.Count(int64(len(views))))
	return views, nil
}

func (races *UseCase) raceView(ctx context.Context, r *model.Race) (*model.RaceView, error) {
	carIDs := lo.Uniq(optIDs(r.Car1ID, r.Car2ID))
	cars, err := fetchAll(ctx, races.fetchParallelism, races.cars, carIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching cars: %w", err)
	}
	var driverIDs, componentIDs []int64
	for _, id := range carIDs {
		c := cars[id]
		if c == nil {
			continue
		}
		driverIDs = append(driverIDs, optIDs(c.MainDriverID)...)
		driverIDs = append(driverIDs, c.TestDriverIDs...)
		componentIDs = append(componentIDs, c.ComponentIDs...)
	}
	drivers, err := fetchAll(
		ctx, races.fetchParallelism, races.drivers, lo.Uniq(driverIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching drivers: %w", err)
	}
	components, err := fetchAll(
		ctx, races.fetchParallelism, races.components,
		lo.Uniq(componentIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching components: %w", err)
	}
	asm := assembler{cars: cars, drivers: drivers, components: components}
	return &model.RaceView{
		Name:     r.Name,
		Location: r.Location,
		Date:     r.Date,
		Car1:     asm.carView(r.Car1ID),
		Car2:     asm.carView(r.Car2ID),
	}, nil
}

// fetchAll resolves all ids using r and returns the fetched entities
// keyed by their IDs. Missing entities are kept as nil values. Up to
// parallelism fetches run concurrently and the first error cancels
// the remaining ones.
func fetchAll[T any](
	ctx context.Context,
	parallelism int,
	r repo.Resolver[T],
	ids []int64,
) (map[int64]*T, error) {
	results := make([]*T, len(ids))
	if parallelism <= 1 {
		for i, id := range ids {
			t, err := r.Fetch(ctx, id)
			if err != nil {
				return nil, err
			}
			results[i] = t
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(parallelism)
		for i, id := range ids {
			g.Go(func() (err error) {
				results[i], err = r.Fetch(gctx, id)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	m := make(map[int64]*T, len(ids))
	for i, id := range ids {
		m[id] = results[i]
	}
	return m, nil
}

type assembler struct {
	cars       map[int64]*model.Car
	drivers    map[int64]*model.Driver
	components map[int64]*model.Component
}

func (a assembler) carView(id *int64) *model.CarView {
	if id == nil {
		return nil
	}
	c := a.cars[*id]
	if c == nil {
		return nil
	}
	v := &model.CarView{
		CarMake: c.CarMake,
		TestDrivers: uniqViews(lo.Map(c.TestDriverIDs,
			func(id int64, _ int) *model.DriverView {
				return model.NewDriverView(a.drivers[id])
			},
		)),
		Components: uniqViews(lo.Map(c.ComponentIDs,
			func(id int64, _ int) *model.ComponentView {
				return model.NewComponentView(a.components[id])
			},
		)),
	}
	if c.MainDriverID != nil {
		v.MainDriver = model.NewDriverView(a.drivers[*c.MainDriverID])
	}
	return v
}

type viewKey[V comparable] struct {
	present bool
	view    V
}

// uniqViews turns vs into a set of views. Two views are the same if
// they have equal fields, so two distinct drivers with the same name,
// surname, nationality, and perk collapse into one view. At most one
// nil view is kept.
func uniqViews[V comparable](vs []*V) []*V {
	return lo.UniqBy(vs, func(v *V) viewKey[V] {
		if v == nil {
			return viewKey[V]{}
		}
		return viewKey[V]{present: true, view: *v}
	})
}

func optIDs(ids ...*int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}
