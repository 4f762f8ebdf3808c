// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine creation and its common
// middlewares, so other packages may create an engine without
// depending on the gin-gonic details.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/pitlane/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the request and response header which carries
// the request identifier.
const RequestIDHeader = "X-Request-ID"

// New creates an engine which uses the given middlewares after the
// RequestID middleware. The gin.Context instances of the engine fall
// back to their request context, so they may be passed to use cases
// as a context.Context.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(RequestID())
	e.Use(middlewares...)
	return e
}

// RequestID assigns an identifier to each request, echoes it in the
// response headers, and stores it in the request context, so it will
// be logged and forwarded to other services. A valid identifier which
// is received from the client is kept.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)
		ctx := log.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logger logs each request using the default slog logger.
func Logger() HandlerFunc {
	return logger.New(slog.Default())
}

// Recovery turns panics into 500 responses and logs them along with
// their stack traces.
func Recovery() HandlerFunc {
	return recovery.New(slog.Default())
}
