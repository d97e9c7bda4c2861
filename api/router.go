/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api is the HTTP boundary: it maps requests to service calls and
// renders JSON, keeping all storage knowledge behind the service layer.
package api

import (
	"github.com/tomoncle/wren/api/middleware"
	"github.com/tomoncle/wren/config"
	"github.com/tomoncle/wren/metrics"
	"github.com/tomoncle/wren/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter assembles the gin engine: middleware chain, operational
// endpoints, and the versioned item routes.
func NewRouter(cfg *config.Config, items *service.ItemService, log zerolog.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.CORS(cfg.Server.CORSOrigins),
	)

	router.GET("/", Root(cfg.ProjectName))
	router.GET("/health", Health)
	router.GET("/health/liveness", Liveness)
	router.GET("/health/readiness", Readiness)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group(cfg.Server.BasePath)
	NewItemHandler(items, log).Register(v1)

	return router
}
