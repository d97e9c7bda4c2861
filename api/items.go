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
	"net/http"
	"strconv"

	"github.com/tomoncle/wren/models"
	"github.com/tomoncle/wren/service"
	"github.com/tomoncle/wren/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const itemNotFoundDetail = "Item not found"

// ItemHandler maps the item routes onto the service layer and renders
// JSON: 200 with the entity, 404 on absence, 422 on malformed input,
// 500 on storage failure.
type ItemHandler struct {
	svc *service.ItemService
	log zerolog.Logger
}

// NewItemHandler builds the handler for the item routes.
func NewItemHandler(svc *service.ItemService, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: log}
}

// Register mounts the item routes under the given group.
func (h *ItemHandler) Register(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	items.GET("", h.List)
	items.POST("", h.Create)
	items.GET("/:id", h.Get)
	items.PUT("/:id", h.Update)
	items.DELETE("/:id", h.Delete)
}

// List serves GET /items. Without with_pagination=true it renders a bare
// array; with it, the pagination envelope {items,total,skip,limit,has_more}.
// is_active and name act as equality filters.
func (h *ItemHandler) List(c *gin.Context) {
	window, ok := parseWindow(c)
	if !ok {
		return
	}

	filters := map[string]interface{}{}
	if raw, exists := c.GetQuery("is_active"); exists {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			renderValidationError(c, "is_active must be a boolean")
			return
		}
		filters["is_active"] = isActive
	}
	if name, exists := c.GetQuery("name"); exists {
		filters["name"] = name
	}

	if c.Query("with_pagination") == "true" {
		page, err := h.svc.ListPage(c.Request.Context(), filters, window)
		if err != nil {
			renderServiceError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, page)
		return
	}

	items, err := h.svc.List(c.Request.Context(), filters, window)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create serves POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var input models.ItemCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		renderValidationError(c, err.Error())
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Get serves GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}
	if item == nil {
		renderNotFound(c, itemNotFoundDetail)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update serves PUT /items/:id with partial merge semantics: only fields
// present in the payload overwrite the stored values.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.ItemUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		renderValidationError(c, err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}
	if item == nil {
		renderNotFound(c, itemNotFoundDetail)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete serves DELETE /items/:id and returns the deleted snapshot.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}
	if item == nil {
		renderNotFound(c, itemNotFoundDetail)
		return
	}
	c.JSON(http.StatusOK, item)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderValidationError(c, "id must be an integer")
		return 0, false
	}
	return id, true
}

func parseWindow(c *gin.Context) (types.Window, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		renderValidationError(c, "skip must be an integer")
		return types.Window{}, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(types.DefaultLimit)))
	if err != nil {
		renderValidationError(c, "limit must be an integer")
		return types.Window{}, false
	}
	return types.NewWindow(skip, limit), true
}
