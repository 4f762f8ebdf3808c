// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package restclient realizes the repo.Resolver port by calling the
// GET /{resource}/{id} endpoint of a sibling service.
//
// Outcomes are translated into three signals:
//  1. exists: a 2xx status with a decodable JSON body,
//  2. absent: any other status (or a malformed 2xx body for Exists),
//  3. transport failure: no complete HTTP response could be obtained,
//     e.g., due to DNS failures, refused connections, or timeouts
//     (including a timeout while the response body is being read).
//
// Only transport failures are reported as errors (as cerr.ExternalCall
// errors). There are no retries.
package restclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/pitlane/pkg/adapter/wire"
	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/model"
)

// RequestIDHeader is the header which carries the request identifier
// of the inbound request to the sibling services.
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout is used when Config.Timeout is not positive.
const DefaultTimeout = 10 * time.Second

// Config describes how a sibling service may be reached.
type Config struct {
	BaseURL string        // like http://car-service:8080
	Timeout time.Duration // of each request, including body reading
	Client  *http.Client  // optional, overrides Timeout if given
}

// Resolver of M resolves IDs of M entities which are owned by one
// sibling service. The W type is the wire representation of M.
type Resolver[M, W any] struct {
	client   *http.Client
	base     *url.URL
	resource string

	toModel func(w *W) *M
}

func newResolver[M, W any](
	cfg Config, resource string, toModel func(*W) *M,
) (*Resolver[M, W], error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", cfg.BaseURL)
	}
	hc := cfg.Client
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Resolver[M, W]{
		client:   hc,
		base:     base,
		resource: resource,
		toModel:  toModel,
	}, nil
}

// NewCars creates a resolver for the cars of the car service.
func NewCars(cfg Config) (*Resolver[model.Car, wire.Car], error) {
	return newResolver(cfg, "cars", (*wire.Car).Model)
}

// NewDrivers creates a resolver for the drivers of the driver service.
func NewDrivers(cfg Config) (*Resolver[model.Driver, wire.Driver], error) {
	return newResolver(cfg, "drivers", (*wire.Driver).Model)
}

// NewComponents creates a resolver for the components of the
// component service.
func NewComponents(cfg Config) (*Resolver[model.Component, wire.Component], error) {
	return newResolver(cfg, "components", (*wire.Component).Model)
}

// Exists returns true if the sibling service answered with a 2xx
// status and a decodable body. A malformed body or any other status
// yields false with a nil error.
func (r *Resolver[M, W]) Exists(ctx context.Context, id int64) (bool, error) {
	var w W
	ok, err := r.get(ctx, id, &w)
	if cerr.Is(err, http.StatusServiceUnavailable) {
		return false, err
	}
	return ok, nil
}

// Fetch returns the entity if the sibling service answered with a 2xx
// status. Other statuses yield a nil entity and a nil error. A 2xx
// status with a malformed body is reported as an unclassified error.
func (r *Resolver[M, W]) Fetch(ctx context.Context, id int64) (*M, error) {
	var w W
	ok, err := r.get(ctx, id, &w)
	switch {
	case err != nil && cerr.Is(err, http.StatusServiceUnavailable):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("fetching %s/%d: %w", r.resource, id, err)
	case !ok:
		return nil, nil
	}
	return r.toModel(&w), nil
}

// get sends the GET request and decodes a 2xx body into w.
// It returns true only if w was filled. Transport failures, while
// sending the request or reading the whole body, are returned as
// cerr.ExternalCall errors. A completely read body which cannot be
// decoded is returned as an unclassified error. Both come with false.
func (r *Resolver[M, W]) get(ctx context.Context, id int64, w *W) (bool, error) {
	u := r.base.JoinPath(r.resource, strconv.FormatInt(id, 10))
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, u.String(), nil,
	)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid := log.RequestID(ctx); rid != "" {
		req.Header.Set(RequestIDHeader, rid)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Warn(ctx, "sibling service is unreachable",
			slog.String("url", u.String()), log.Err("err", err),
		)
		return false, cerr.ExternalCall(fmt.Errorf(
			"Error while calling external service: %w", err,
		))
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	log.Debug(ctx, "sibling service answered",
		slog.String("resource", r.resource), log.ID("id", id),
		slog.Int("status", resp.StatusCode),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "sibling service body is not readable",
			slog.String("url", u.String()), log.Err("err", err),
		)
		return false, cerr.ExternalCall(fmt.Errorf(
			"Error while calling external service: %w", err,
		))
	}
	if err = json.Unmarshal(body, w); err != nil {
		return false, fmt.Errorf("decoding body: %w", err)
	}
	return true, nil
}
