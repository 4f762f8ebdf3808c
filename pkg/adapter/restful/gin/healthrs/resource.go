// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package healthrs realizes the /healthz probe which reports whether
// the service can reach its database.
package healthrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/momeni/pitlane/pkg/core/repo"
)

type resource struct {
	pool repo.Pool
}

// Register adds GET and HEAD requests to /healthz. They answer 200
// with {"status":"ok"} if a connection could be acquired from p and
// pinged, and 503 with {"status":"unavailable"} otherwise.
func Register(r *gin.RouterGroup, p repo.Pool) {
	rs := &resource{pool: p}
	r.GET("healthz", rs.Health)
	r.HEAD("healthz", rs.Health)
}

func (rs *resource) Health(c *gin.Context) {
	code, status := http.StatusOK, "ok"
	if err := repo.Ping(c, rs.pool); err != nil {
		log.Warn(c, "health check failed", log.Err("err", err))
		code, status = http.StatusServiceUnavailable, "unavailable"
	}
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", "application/json")
		c.Status(code)
		return
	}
	c.JSON(code, gin.H{"status": status})
}
