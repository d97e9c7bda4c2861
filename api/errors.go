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

package api

import (
	"errors"
	"net/http"

	"github.com/tomoncle/wren/database"
	"github.com/tomoncle/wren/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the structured error body rendered by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func renderError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

func renderNotFound(c *gin.Context, detail string) {
	renderError(c, http.StatusNotFound, detail)
}

func renderValidationError(c *gin.Context, detail string) {
	renderError(c, http.StatusUnprocessableEntity, detail)
}

// renderServiceError maps the error kinds surfaced by the service layer:
// unknown filter fields and malformed input are the caller's fault (422),
// duplicate keys collide with existing state (409), everything else is a
// storage failure (500) logged with the request id.
func renderServiceError(c *gin.Context, log zerolog.Logger, err error) {
	if errors.Is(err, repository.ErrUnknownField) {
		renderValidationError(c, err.Error())
		return
	}
	if is, kind := database.IsSqlError(err); is && kind == database.DuplicateKeyErr {
		renderError(c, http.StatusConflict, "Resource already exists")
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Bool("storage_unavailable", database.IsUnavailable(err)).
		Msg("request failed")
	renderError(c, http.StatusInternalServerError, "Internal server error")
}
