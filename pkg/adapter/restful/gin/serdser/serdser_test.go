// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package serdser_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, err error) (int, serdser.ErrorBody) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/cars/:id", func(c *gin.Context) {
		serdser.SerErr(c, err)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/7", nil)
	e.ServeHTTP(w, req)
	var body serdser.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSerErrClassified(t *testing.T) {
	code, body := serve(t, fmt.Errorf(
		"finding: %w", cerr.Newf(cerr.NotFound, "Car with id: %d not found.", 7),
	))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Car with id: 7 not found.", body.Detail)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "/cars/7", body.Path)
	assert.NotEmpty(t, body.Timestamp)
}

func TestSerErrUnclassifiedUsesRootCause(t *testing.T) {
	err := fmt.Errorf("a: %w", fmt.Errorf("b: %w", errors.New("disk full")))
	code, body := serve(t, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "disk full", body.Detail)
}

func TestIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	var got int64
	e.GET("/cars/:id", func(c *gin.Context) {
		if id, ok := serdser.IDParam(c, "id"); ok {
			got = id
			c.Status(http.StatusNoContent)
		}
	})
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars/42", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(42), got)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars/x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"id":["Path param id is not an integer."]}`, w.Body.String())
}
