// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package racesuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/momeni/pitlane/internal/mocks"
	"github.com/momeni/pitlane/internal/test/memrp"
	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/model"
	"github.com/momeni/pitlane/pkg/core/usecase/racesuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RacesUseCaseTestSuite struct {
	suite.Suite

	Ctx        context.Context
	Repo       memrp.Races
	Cars       *mocks.MockResolver[model.Car]
	Drivers    *mocks.MockResolver[model.Driver]
	Components *mocks.MockResolver[model.Component]
	UC         *racesuc.UseCase

	opts []racesuc.Option
}

func TestRacesUseCaseTestSuite(t *testing.T) {
	suite.Run(t, &RacesUseCaseTestSuite{})
}

func TestRacesUseCaseWithParallelFetchTestSuite(t *testing.T) {
	suite.Run(t, &RacesUseCaseTestSuite{
		opts: []racesuc.Option{racesuc.WithFetchParallelism(4)},
	})
}

func (s *RacesUseCaseTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.Ctx = context.Background()
	s.Repo = memrp.NewRaces()
	s.Cars = mocks.NewMockResolver[model.Car](ctrl)
	s.Drivers = mocks.NewMockResolver[model.Driver](ctrl)
	s.Components = mocks.NewMockResolver[model.Component](ctrl)
	uc, err := racesuc.New(
		memrp.Pool{}, s.Repo, s.Cars, s.Drivers, s.Components, s.opts...,
	)
	s.Require().NoError(err)
	s.UC = uc
}

func idAddr(id int64) *int64 {
	return &id
}

var raceDate = time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)

func validRace() *model.Race {
	return &model.Race{
		Name: "Grand Prix",
		Location: &model.Location{
			Country: "Czechia", City: "Brno", Street: "Masarykuv okruh",
		},
		Date: raceDate,
	}
}

func (s *RacesUseCaseTestSuite) store(r *model.Race) *model.Race {
	stored, err := s.Repo.Create(s.Ctx, r)
	s.Require().NoError(err)
	return stored
}

func (s *RacesUseCaseTestSuite) TestValidateLocalFieldsOrder() {
	for _, tc := range []struct {
		name   string
		mutate func(r *model.Race)
		msg    string
	}{
		{"no date", func(r *model.Race) { r.Date = time.Time{}; r.Name = "" }, "Race date cannot be empty"},
		{"no name", func(r *model.Race) { r.Name = ""; r.Location = nil }, "Race name cannot be empty"},
		{"no location", func(r *model.Race) { r.Location = nil }, "Race location cannot be empty"},
		{"no city", func(r *model.Race) { r.Location.City = "" }, "Race location data cannot be empty"},
	} {
		s.Run(tc.name, func() {
			r := validRace()
			tc.mutate(r)
			_, err := s.UC.Create(s.Ctx, r)
			s.Equal(http.StatusBadRequest, cerr.StatusCode(err))
			s.EqualError(errors.Unwrap(err), tc.msg)
		})
	}
}

func (s *RacesUseCaseTestSuite) TestValidateCarsBeforeLocalFields() {
	gomock.InOrder(
		s.Cars.EXPECT().Exists(s.Ctx, int64(1)).Return(true, nil),
		s.Cars.EXPECT().Exists(s.Ctx, int64(2)).Return(false, nil),
	)
	r := validRace()
	r.Name = ""
	r.Car1ID, r.Car2ID = idAddr(1), idAddr(2)
	_, err := s.UC.Create(s.Ctx, r)
	s.Equal(http.StatusBadGateway, cerr.StatusCode(err))
	s.EqualError(errors.Unwrap(err), "Car with id 2 does not exist")
}

func (s *RacesUseCaseTestSuite) TestCreateFindByIDRoundTrip() {
	s.Cars.EXPECT().Exists(s.Ctx, int64(5)).Return(true, nil)
	r := validRace()
	r.Car2ID = idAddr(5)
	created, err := s.UC.Create(s.Ctx, r)
	s.Require().NoError(err)
	found, err := s.UC.FindByID(s.Ctx, created.ID)
	s.Require().NoError(err)
	r.ID = created.ID
	s.Equal(r, found)
}

func (s *RacesUseCaseTestSuite) TestUpdateMissingRaceWithBadCar() {
	s.Cars.EXPECT().Exists(s.Ctx, int64(1)).Return(false, nil)
	r := validRace()
	r.ID = 404
	r.Car1ID = idAddr(1)
	_, err := s.UC.Update(s.Ctx, r)
	s.Equal(http.StatusBadGateway, cerr.StatusCode(err),
		"car validation must run before the existence check")
}

func (s *RacesUseCaseTestSuite) TestUpdateMissingRace() {
	r := validRace()
	r.ID = 404
	_, err := s.UC.Update(s.Ctx, r)
	s.Equal(http.StatusNotFound, cerr.StatusCode(err))
	s.EqualError(errors.Unwrap(err),
		"Cannot update, race not found with id: 404")
}

func (s *RacesUseCaseTestSuite) TestUpdate() {
	stored := s.store(validRace())
	stored.Name = "Sprint"
	updated, err := s.UC.Update(s.Ctx, stored)
	s.Require().NoError(err)
	s.Equal("Sprint", updated.Name)
}

func (s *RacesUseCaseTestSuite) TestAssignCarOneIsIdempotent() {
	stored := s.store(validRace())
	s.Cars.EXPECT().Exists(s.Ctx, int64(7)).Return(true, nil).Times(2)
	for i := 0; i < 2; i++ {
		r, err := s.UC.AssignCarOne(s.Ctx, stored.ID, 7)
		s.Require().NoError(err)
		s.Equal(idAddr(7), r.Car1ID)
		s.Nil(r.Car2ID)
	}
	found, err := s.UC.FindByID(s.Ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal(idAddr(7), found.Car1ID)
}

func (s *RacesUseCaseTestSuite) TestAssignCarTwo() {
	stored := s.store(validRace())
	s.Cars.EXPECT().Exists(s.Ctx, int64(8)).Return(false, nil)
	_, err := s.UC.AssignCarTwo(s.Ctx, stored.ID, 8)
	s.Equal(http.StatusBadGateway, cerr.StatusCode(err))
	s.EqualError(errors.Unwrap(err), "Car does not exist")

	s.Cars.EXPECT().Exists(s.Ctx, int64(9)).Return(true, nil)
	r, err := s.UC.AssignCarTwo(s.Ctx, stored.ID, 9)
	s.Require().NoError(err)
	s.Equal(idAddr(9), r.Car2ID)
	s.Nil(r.Car1ID)
}

func (s *RacesUseCaseTestSuite) TestAssignCarToMissingRace() {
	// the car resolver must not be called at all
	_, err := s.UC.AssignCarOne(s.Ctx, 404, 7)
	s.Equal(http.StatusNotFound, cerr.StatusCode(err))
	s.EqualError(errors.Unwrap(err), "Race not found with id: 404")
}

func (s *RacesUseCaseTestSuite) TestFinders() {
	a := validRace()
	a.Car1ID = idAddr(1)
	b := validRace()
	b.Location = &model.Location{Country: "Italy", City: "Monza", Street: "Via"}
	b.Car2ID = idAddr(1)
	c := validRace()
	c.Location.Country = "Austria"
	c.Location.City = "Spielberg"
	c.Location.Street = "Ring"
	for _, r := range []*model.Race{a, b, c} {
		r.ID = s.store(r).ID
	}
	rs, err := s.UC.FindByCarID(s.Ctx, 1)
	s.Require().NoError(err)
	s.Equal([]model.Race{*a, *b}, rs)
	rs, err = s.UC.FindByLocation(s.Ctx, "", "Monza", "Ring")
	s.Require().NoError(err)
	s.Equal([]model.Race{*b, *c}, rs)
	rs, err = s.UC.FindByLocation(s.Ctx, "", "", "")
	s.Require().NoError(err)
	s.Empty(rs)

	s.Require().NoError(s.UC.DeleteByID(s.Ctx, a.ID))
	err = s.UC.DeleteByID(s.Ctx, a.ID)
	s.Equal(http.StatusNotFound, cerr.StatusCode(err))
	s.Require().NoError(s.UC.DeleteAll(s.Ctx))
	rs, err = s.UC.FindAll(s.Ctx)
	s.Require().NoError(err)
	s.Empty(rs)
}

func (s *RacesUseCaseTestSuite) TestFindAllWithCars() {
	r := validRace()
	r.Car1ID, r.Car2ID = idAddr(1), idAddr(2)
	s.store(r)
	s.Cars.EXPECT().Fetch(gomock.Any(), int64(1)).Return(&model.Car{
		ID:            1,
		MainDriverID:  idAddr(10),
		CarMake:       "Ferrari",
		TestDriverIDs: []int64{20},
		ComponentIDs:  []int64{30},
	}, nil)
	s.Cars.EXPECT().Fetch(gomock.Any(), int64(2)).Return(nil, nil)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(10)).Return(&model.Driver{
		ID: 10, Name: "Charles", Surname: "Leclerc",
		Nationality: "Monegasque", Perk: model.DriverPerkOvertaker,
	}, nil)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(20)).Return(&model.Driver{
		ID: 20, Name: "Oliver", Surname: "Bearman",
		Nationality: "British", Perk: model.DriverPerkFuelSaving,
	}, nil)
	s.Components.EXPECT().Fetch(gomock.Any(), int64(30)).Return(
		&model.Component{
			ID: 30, Weight: 150, Price: 900, Manufacturer: "Ferrari",
			Version: "066/12", Type: model.ComponentTypeEngine,
		}, nil,
	)

	views, err := s.UC.FindAllWithCars(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]model.RaceView{{
		Name:     r.Name,
		Location: r.Location,
		Date:     raceDate,
		Car1: &model.CarView{
			CarMake: "Ferrari",
			MainDriver: &model.DriverView{
				Name: "Charles", Surname: "Leclerc",
				Nationality: "Monegasque",
				Perk:        model.DriverPerkOvertaker,
			},
			TestDrivers: []*model.DriverView{{
				Name: "Oliver", Surname: "Bearman",
				Nationality: "British",
				Perk:        model.DriverPerkFuelSaving,
			}},
			Components: []*model.ComponentView{{
				Weight: 150, Price: 900, Manufacturer: "Ferrari",
				Version: "066/12", Type: model.ComponentTypeEngine,
			}},
		},
		Car2: nil,
	}}, views)
}

func (s *RacesUseCaseTestSuite) TestFindAllWithCarsAbortsOnFailure() {
	r := validRace()
	r.Car1ID = idAddr(1)
	s.store(r)
	s.store(validRace())
	s.Cars.EXPECT().Fetch(gomock.Any(), int64(1)).Return(&model.Car{
		ID:            1,
		MainDriverID:  idAddr(10),
		CarMake:       "Ferrari",
		TestDriverIDs: []int64{20},
		ComponentIDs:  []int64{30},
	}, nil)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(10)).
		Return(&model.Driver{ID: 10}, nil).MaxTimes(1)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(20)).Return(
		nil, cerr.ExternalCall(errors.New("connection refused")),
	)
	s.Components.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(&model.Component{}, nil).AnyTimes()

	views, err := s.UC.FindAllWithCars(s.Ctx)
	s.Nil(views, "no partial result is expected")
	s.Equal(http.StatusServiceUnavailable, cerr.StatusCode(err))
}

func (s *RacesUseCaseTestSuite) TestFindAllWithCarsResolvesDistinctIDsPerRace() {
	r := validRace()
	r.Car1ID, r.Car2ID = idAddr(1), idAddr(1)
	s.store(r)
	s.store(r)
	car := &model.Car{
		ID:            1,
		MainDriverID:  idAddr(10),
		CarMake:       "Williams",
		TestDriverIDs: []int64{10, 11},
		ComponentIDs:  []int64{30, 31},
	}
	same := &model.Component{
		Weight: 1, Price: 1, Manufacturer: "X", Type: model.ComponentTypeGear,
	}
	// once per race, never shared between the two races
	s.Cars.EXPECT().Fetch(gomock.Any(), int64(1)).Return(car, nil).Times(2)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(10)).
		Return(&model.Driver{ID: 10, Name: "Alex"}, nil).Times(2)
	s.Drivers.EXPECT().Fetch(gomock.Any(), int64(11)).
		Return(nil, nil).Times(2)
	s.Components.EXPECT().Fetch(gomock.Any(), int64(30)).
		Return(same, nil).Times(2)
	s.Components.EXPECT().Fetch(gomock.Any(), int64(31)).
		Return(same, nil).Times(2)

	views, err := s.UC.FindAllWithCars(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	for _, v := range views {
		s.Equal(v.Car1, v.Car2)
		s.Equal(&model.DriverView{Name: "Alex"}, v.Car1.MainDriver)
		s.Equal([]*model.DriverView{{Name: "Alex"}, nil}, v.Car1.TestDrivers)
		s.Len(v.Car1.Components, 1, "equal views form one set member")
	}
}

func (s *RacesUseCaseTestSuite) TestFindAllWithCarsWithoutCars() {
	s.store(validRace())
	views, err := s.UC.FindAllWithCars(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Nil(views[0].Car1)
	s.Nil(views[0].Car2)
}

func TestNewRejectsInvalidParallelism(t *testing.T) {
	_, err := racesuc.New(nil, nil, nil, nil, nil,
		racesuc.WithFetchParallelism(0),
	)
	require.Error(t, err)
	_, err = racesuc.New(nil, nil, nil, nil, nil,
		racesuc.WithFetchParallelism(2),
		racesuc.WithFetchParallelism(3),
	)
	assert.ErrorContains(t, err, "already configured")
}
