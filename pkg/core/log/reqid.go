// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import "context"

type requestIDKey struct{}

// RequestIDKey is the attribute key which is used for logging the
// request ID of a context.
const RequestIDKey = "request_id"

// WithRequestID returns a child of ctx which carries the id request
// identifier. All records which are logged with the returned context
// (or its children) will include the id as a request_id attribute.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request identifier which is carried by ctx,
// or an empty string if ctx carries no such identifier.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
