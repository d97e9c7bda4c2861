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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomoncle/wren/api"
	"github.com/tomoncle/wren/config"
	"github.com/tomoncle/wren/database"
	"github.com/tomoncle/wren/logging"
	"github.com/tomoncle/wren/metrics"
	"github.com/tomoncle/wren/models"
	"github.com/tomoncle/wren/service"

	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", os.Getenv("WREN_CONFIG"), "path to the YAML config file")
	flag.Parse()

	// Optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	database.InitLogger(database.NewZerologLogger(log.With().Str("component", "database").Logger()))

	database.RegisterModel(database.NewModelAdapter((*models.Item)(nil), 1))

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() { _ = database.CloseDB() }()

	metrics.SetAppInfo(cfg.ProjectName, version)

	items := service.NewItemService(db)
	router := api.NewRouter(cfg, items, log)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("environment", cfg.Environment).
			Msg("starting up application")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down application")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
