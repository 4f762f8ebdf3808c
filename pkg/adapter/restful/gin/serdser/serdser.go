// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the request deserialization and response
// serialization helpers which are shared by all resource packages.
package serdser

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/pitlane/pkg/core/cerr"
	"github.com/momeni/pitlane/pkg/core/log"
)

// Bind binds the request into req using the b binding and validates
// it. Binding errors are written as a 400 (or 500 for an invalid req
// type) response and false is returned.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// IDParam parses the name path parameter as an entity ID.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		var errs map[string][]string
		AddErr(&errs, name, fmt.Sprintf(
			"Path param %s is not an integer.", name,
		))
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return id, true
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// ErrorBody is the JSON body of error responses.
type ErrorBody struct {
	Detail    string `json:"detail"`
	Status    int    `json:"status"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// SerErr writes err as an error response. A cerr.Error is written
// with its own status code and message. Other errors are reported as
// internal server errors, using the message of their root cause.
func SerErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var detail string
	var ce *cerr.Error
	if errors.As(err, &ce) {
		status, detail = ce.HTTPStatusCode, ce.Err.Error()
	} else {
		detail = cerr.RootCause(err).Error()
	}
	if status >= http.StatusInternalServerError {
		log.Error(c, "request failed", log.Err("err", err))
	} else {
		log.Debug(c, "request rejected", log.Err("err", err))
	}
	c.JSON(status, ErrorBody{
		Detail:    detail,
		Status:    status,
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Created sets the Location header of a 201 response, pointing to
// the id sub-resource of the request path.
func Created(c *gin.Context, id int64) {
	u := c.Request.URL.JoinPath(strconv.FormatInt(id, 10))
	c.Header("Location", u.Path)
}
