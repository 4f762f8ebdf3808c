// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr provides the core layer error type which classifies an
// error condition by the HTTP status code that it should be reported
// with. Errors which are not wrapped by an Error instance are treated
// as unclassified internal errors.
//
// Four classes are used by the services:
//  1. NotFound: a local entity with the requested ID does not exist,
//  2. Validation (alias BadRequest): a local field constraint is
//     violated,
//  3. DataStorage: a foreign reference could not be confirmed to exist
//     by its owning sibling service,
//  4. ExternalCall: a sibling service could not be reached at all.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// Validation reports a violated local field constraint.
func Validation(err error) *Error {
	return BadRequest(err)
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// DataStorage reports a foreign reference which is not resolvable.
// The root cause is an upstream data inconsistency, so it is reported
// as a bad gateway.
func DataStorage(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadGateway}
}

// ExternalCall reports a transport failure while calling a sibling
// service, when no HTTP response could be obtained.
func ExternalCall(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}

// Newf creates an error message using fmt.Errorf and classifies it
// using the kind constructor, e.g., Newf(NotFound, "id %d", id).
func Newf(kind func(error) *Error, format string, a ...any) *Error {
	return kind(fmt.Errorf(format, a...))
}

// StatusCode returns the HTTP status code of the outer-most Error in
// the err chain, or http.StatusInternalServerError if err is not
// classified at all.
func StatusCode(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.HTTPStatusCode
	}
	return http.StatusInternalServerError
}

// Is reports whether err is classified with the given status code.
func Is(err error, statusCode int) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.HTTPStatusCode == statusCode
}

// RootCause follows the Unwrap chain of err and returns its inner
// most error. Joined errors are not traversed.
func RootCause(err error) error {
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
}
