// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/momeni/pitlane/internal/test/dbcontainer"
	"github.com/momeni/pitlane/pkg/adapter/config"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/routes"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/stretchr/testify/suite"
)

// IntegrationGinTestSuite runs all services on one PostgreSQL database,
// each one behind its own HTTP server, so the car and race services
// call their sibling services over real HTTP connections.
type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool

	Servers map[string]*httptest.Server
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(
		ctx, 60*time.Second, t, routes.Services...,
	)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) newConfig() *config.Config {
	c := &config.Config{
		Database: config.Database{Host: "db", Name: "pitlane", User: "pitlane"},
	}
	igts.Require().NoError(c.ValidateAndNormalize())
	return c
}

func (igts *IntegrationGinTestSuite) serve(service string, c *config.Config) *httptest.Server {
	e := gin.New(gin.Recovery())
	igts.Require().NoError(routes.Register(e, igts.Pool, c, service))
	srv := httptest.NewServer(e)
	igts.T().Cleanup(srv.Close)
	return srv
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	igts.Servers = make(map[string]*httptest.Server)
	c := igts.newConfig()
	for _, s := range []string{routes.Driver, routes.Component} {
		igts.Servers[s] = igts.serve(s, c)
	}
	c.Upstreams.Driver = igts.Servers[routes.Driver].URL
	c.Upstreams.Component = igts.Servers[routes.Component].URL
	igts.Servers[routes.Car] = igts.serve(routes.Car, c)
	c.Upstreams.Car = igts.Servers[routes.Car].URL
	igts.Servers[routes.Race] = igts.serve(routes.Race, c)
}

func (igts *IntegrationGinTestSuite) SetupTest() {
	for _, path := range []string{"races", "cars", "drivers", "components"} {
		service := path[:len(path)-1]
		code := igts.send(service, http.MethodDelete, "/"+path, nil, nil)
		igts.Require().Equal(http.StatusNoContent, code)
	}
}

// send sends a JSON request to the service and decodes its response
// into res (if non-nil), returning the response status code.
func (igts *IntegrationGinTestSuite) send(
	service, method, path string, body, res any,
) int {
	var buf bytes.Buffer
	if body != nil {
		igts.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(
		igts.Ctx, method, igts.Servers[service].URL+path, &buf,
	)
	igts.Require().NoError(err, "cannot create request")
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	igts.Require().NoError(err, "cannot send request")
	defer resp.Body.Close()
	if res != nil {
		igts.NoError(json.NewDecoder(resp.Body).Decode(res), "body is not json")
	}
	return resp.StatusCode
}

type errorBody struct {
	Detail string
	Status int
	Path   string
}

func idAddr(id int64) *int64 {
	return &id
}

func (igts *IntegrationGinTestSuite) createDriver(name, perk string) int64 {
	var d wire.Driver
	code := igts.send(routes.Driver, http.MethodPost, "/drivers", wire.Driver{
		Name: name, Surname: name + "son", Nationality: "British", Perk: perk,
	}, &d)
	igts.Require().Equal(http.StatusCreated, code)
	return d.ID
}

func (igts *IntegrationGinTestSuite) createComponent(t string) int64 {
	var cmp wire.Component
	code := igts.send(routes.Component, http.MethodPost, "/components", wire.Component{
		Weight: 10, Price: 1000, Manufacturer: "Brembo", Version: "v2", Type: t,
	}, &cmp)
	igts.Require().Equal(http.StatusCreated, code)
	return cmp.ID
}

func (igts *IntegrationGinTestSuite) TestBadRequest() {
	res := map[string][]string{}
	code := igts.send(routes.Car, http.MethodGet, "/cars/abc", nil, &res)
	igts.Equal(http.StatusBadRequest, code)
	igts.Equal([]string{"Path param id is not an integer."}, res["id"])

	res = map[string][]string{}
	code = igts.send(routes.Race, http.MethodPost, "/races", map[string]any{
		"name": "Monza", "date": "1st of September",
	}, &res)
	igts.Equal(http.StatusBadRequest, code)
	igts.Len(res["date"], 1)

	res = map[string][]string{}
	code = igts.send(routes.Race, http.MethodPut, "/races/1/assignCarOne", nil, &res)
	igts.Equal(http.StatusBadRequest, code)
	igts.Contains(res["CarID"][0], "failed on the 'required' tag")

	var eb errorBody
	code = igts.send(routes.Component, http.MethodPost, "/components", wire.Component{
		Weight: 0, Price: 10, Manufacturer: "Brembo", Type: "GEAR",
	}, &eb)
	igts.Equal(http.StatusBadRequest, code)
	igts.Equal(http.StatusBadRequest, eb.Status)
	igts.Equal("/components", eb.Path)
}

func (igts *IntegrationGinTestSuite) TestNotFound() {
	for _, tc := range []struct {
		service, path, detail string
	}{
		{routes.Car, "/cars/424242", "Car with id: 424242 not found."},
		{routes.Race, "/races/424242", "Race not found with id: 424242"},
		{routes.Component, "/components/424242", "Component not found with id: 424242"},
	} {
		igts.Run(tc.path, func() {
			var eb errorBody
			code := igts.send(tc.service, http.MethodGet, tc.path, nil, &eb)
			igts.Equal(http.StatusNotFound, code)
			igts.Equal(tc.detail, eb.Detail)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestCarReferenceValidation() {
	engine := igts.createComponent("ENGINE")
	var eb errorBody
	code := igts.send(routes.Car, http.MethodPost, "/cars", wire.Car{
		CarMake: "Ferrari", ComponentIDs: []int64{engine, engine + 1000},
	}, &eb)
	igts.Equal(http.StatusBadGateway, code)
	igts.Equal(fmt.Sprintf("Component with id: %d does not exist.", engine+1000), eb.Detail)

	code = igts.send(routes.Car, http.MethodPost, "/cars", wire.Car{
		MainDriverID: idAddr(424242), CarMake: "Ferrari", ComponentIDs: []int64{engine},
	}, &eb)
	igts.Equal(http.StatusBadGateway, code)
	igts.Equal("Driver with id: 424242 does not exist.", eb.Detail)

	code = igts.send(routes.Car, http.MethodPost, "/cars", wire.Car{
		ComponentIDs: []int64{engine},
	}, &eb)
	igts.Equal(http.StatusBadRequest, code)
	igts.Equal("Car make cannot be null or empty.", eb.Detail)
}

func (igts *IntegrationGinTestSuite) TestCarRoundTrip() {
	lewis := igts.createDriver("Lewis", "RAIN_MASTER")
	george := igts.createDriver("George", "OVERTAKER")
	engine := igts.createComponent("ENGINE")
	gear := igts.createComponent("GEAR")
	var created wire.Car
	code := igts.send(routes.Car, http.MethodPost, "/cars", wire.Car{
		MainDriverID:  &lewis,
		CarMake:       "Mercedes",
		TestDriverIDs: []int64{george, george},
		ComponentIDs:  []int64{gear, engine},
	}, &created)
	igts.Require().Equal(http.StatusCreated, code)

	var found wire.Car
	code = igts.send(routes.Car, http.MethodGet, fmt.Sprintf("/cars/%d", created.ID), nil, &found)
	igts.Equal(http.StatusOK, code)
	igts.Equal(wire.Car{
		ID:            created.ID,
		MainDriverID:  &lewis,
		CarMake:       "Mercedes",
		TestDriverIDs: []int64{george},
		ComponentIDs:  []int64{gear, engine},
	}, found)

	var cars []wire.Car
	code = igts.send(routes.Car, http.MethodGet, fmt.Sprintf("/cars/mainDriver/%d", lewis), nil, &cars)
	igts.Equal(http.StatusOK, code)
	igts.Equal([]wire.Car{found}, cars)
}

func (igts *IntegrationGinTestSuite) createCar() (carID, driverID, componentID int64) {
	driverID = igts.createDriver("Charles", "OVERTAKER")
	componentID = igts.createComponent("SPOILER")
	var car wire.Car
	code := igts.send(routes.Car, http.MethodPost, "/cars", wire.Car{
		MainDriverID: &driverID, CarMake: "Ferrari",
		TestDriverIDs: []int64{driverID}, ComponentIDs: []int64{componentID},
	}, &car)
	igts.Require().Equal(http.StatusCreated, code)
	return car.ID, driverID, componentID
}

func (igts *IntegrationGinTestSuite) TestRacesWithCars() {
	carID, _, _ := igts.createCar()
	monza := wire.Race{
		Name:     "Monza",
		Location: &wire.Location{Country: "Italy", City: "Monza", Street: "Viale di Vedano"},
		Date:     "2024-09-01",
		Car1ID:   &carID,
	}
	var race wire.Race
	code := igts.send(routes.Race, http.MethodPost, "/races", monza, &race)
	igts.Require().Equal(http.StatusCreated, code)
	monza.ID = race.ID
	igts.Equal(monza, race)

	var views []wire.RaceView
	code = igts.send(routes.Race, http.MethodGet, "/races/withCars", nil, &views)
	igts.Require().Equal(http.StatusOK, code)
	igts.Require().Len(views, 1)
	v := views[0]
	igts.Equal("2024-09-01", v.Date)
	igts.Nil(v.Car2)
	igts.Require().NotNil(v.Car1)
	charles := &wire.DriverView{
		Name: "Charles", Surname: "Charlesson", Nationality: "British", Perk: "OVERTAKER",
	}
	igts.Equal(&wire.CarView{
		MainDriver:  charles,
		CarMake:     "Ferrari",
		TestDrivers: []*wire.DriverView{charles},
		Components: []*wire.ComponentView{{
			Weight: 10, Price: 1000, Manufacturer: "Brembo", Version: "v2", Type: "SPOILER",
		}},
	}, v.Car1)

	var races []wire.Race
	code = igts.send(routes.Race, http.MethodGet, "/races/location?city=Monza&country=Spain", nil, &races)
	igts.Equal(http.StatusOK, code)
	igts.Equal([]wire.Race{race}, races)
	code = igts.send(routes.Race, http.MethodGet, "/races/location", nil, &races)
	igts.Equal(http.StatusOK, code)
	igts.Empty(races)
	code = igts.send(routes.Race, http.MethodGet, fmt.Sprintf("/races/car/%d", carID), nil, &races)
	igts.Equal(http.StatusOK, code)
	igts.Equal([]wire.Race{race}, races)
}

func (igts *IntegrationGinTestSuite) TestAssignCar() {
	carID, _, _ := igts.createCar()
	var race wire.Race
	code := igts.send(routes.Race, http.MethodPost, "/races", wire.Race{
		Name:     "Silverstone",
		Location: &wire.Location{Country: "UK", City: "Silverstone", Street: "Dadford Rd"},
		Date:     "2024-07-07",
	}, &race)
	igts.Require().Equal(http.StatusCreated, code)

	path := fmt.Sprintf("/races/%d/assignCarTwo?carId=%d", race.ID, carID)
	for range 2 {
		var assigned wire.Race
		code = igts.send(routes.Race, http.MethodPut, path, nil, &assigned)
		igts.Equal(http.StatusOK, code)
		igts.Equal(&carID, assigned.Car2ID)
		igts.Nil(assigned.Car1ID)
	}

	var eb errorBody
	path = fmt.Sprintf("/races/%d/assignCarOne?carId=%d", race.ID, carID+1000)
	code = igts.send(routes.Race, http.MethodPut, path, nil, &eb)
	igts.Equal(http.StatusBadGateway, code)
	igts.Equal("Car does not exist", eb.Detail)

	path = fmt.Sprintf("/races/%d/assignCarOne?carId=%d", race.ID+1000, carID)
	code = igts.send(routes.Race, http.MethodPut, path, nil, &eb)
	igts.Equal(http.StatusNotFound, code)
}

func (igts *IntegrationGinTestSuite) TestUnreachableSibling() {
	c := igts.newConfig()
	c.Upstreams.Car = "http://127.0.0.1:1"
	c.Upstreams.Driver = c.Upstreams.Car
	c.Upstreams.Component = c.Upstreams.Car
	igts.Servers["race-offline"] = igts.serve(routes.Race, c)
	defer delete(igts.Servers, "race-offline")

	carID, _, _ := igts.createCar()
	var eb errorBody
	code := igts.send("race-offline", http.MethodPost, "/races", wire.Race{
		Name:     "Spa",
		Location: &wire.Location{Country: "Belgium", City: "Stavelot", Street: "Route du Circuit"},
		Date:     "2024-07-28",
		Car1ID:   &carID,
	}, &eb)
	igts.Equal(http.StatusServiceUnavailable, code)
	igts.Contains(eb.Detail, "Error while calling external service")
}

func (igts *IntegrationGinTestSuite) TestHealth() {
	for _, service := range routes.Services {
		res := map[string]string{}
		code := igts.send(service, http.MethodGet, "/healthz", nil, &res)
		igts.Equal(http.StatusOK, code, service)
		igts.Equal("ok", res["status"], service)
	}
}
