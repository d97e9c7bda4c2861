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
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomoncle/wren/models"
	"github.com/tomoncle/wren/service"
	"github.com/tomoncle/wren/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.ItemService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	_, err = db.NewCreateTable().Model((*models.Item)(nil)).IfNotExists().Exec(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := service.NewItemService(db)
	router := gin.New()
	NewItemHandler(svc, zerolog.Nop()).Register(router.Group("/api/v1"))
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeItem(t *testing.T, rec *httptest.ResponseRecorder) models.Item {
	t.Helper()
	var item models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func TestItemCRUDOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/items", gin.H{
		"name":        "Test Item",
		"description": "Test Description",
		"metadata":    gin.H{"source": "import"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeItem(t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Test Item", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, "import", created.Metadata["source"])

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/items/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeItem(t, rec).ID)

	// Partial update: only the name changes, everything else survives.
	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/items/%d", created.ID), gin.H{
		"name": "Renamed Item",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeItem(t, rec)
	assert.Equal(t, "Renamed Item", updated.Name)
	assert.Equal(t, "Test Description", updated.Description)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "import", updated.Metadata["source"])

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed Item", decodeItem(t, rec).Name)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/items/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemNotFoundResponses(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, gin.H{"name": "x"}},
		{http.MethodDelete, nil},
	} {
		rec := doJSON(t, router, tc.method, "/api/v1/items/4040", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Item not found", body.Detail, tc.method)
	}
}

func TestItemValidationResponses(t *testing.T) {
	router, _ := newTestRouter(t)

	// name is required on create.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/items", gin.H{"description": "no name"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// non-integer path id.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/items/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// non-integer window values.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?skip=x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?limit=x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// non-boolean is_active filter.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?is_active=maybe", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestItemListBareAndEnvelope(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, &models.ItemCreate{Name: fmt.Sprintf("item-%d", i)})
		require.NoError(t, err)
	}

	// Default shape is a bare array.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/items?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].Name)

	// with_pagination=true wraps the same window in an envelope.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?skip=1&limit=2&with_pagination=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page types.Page[models.Item]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Skip)
	assert.Equal(t, 2, page.Limit)
	assert.True(t, page.HasMore)
}

func TestItemListFilters(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.ItemCreate{Name: "active-item"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.ItemCreate{Name: "inactive-item", IsActive: types.Some(false)})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/items?is_active=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "inactive-item", items[0].Name)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?name=active-item", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "active-item", items[0].Name)
}

func TestItemListEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/items?with_pagination=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page types.Page[models.Item]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.False(t, page.HasMore)
}
