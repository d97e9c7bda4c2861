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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesRecordedMetrics(t *testing.T) {
	SetAppInfo("wren", "test")
	RecordHTTPRequest(http.MethodGet, "/api/v1/items", "200", 12*time.Millisecond)
	RecordQuery("SELECT", "ok", 3*time.Millisecond)
	IncInFlight()
	DecInFlight()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "wren_app_info")
	assert.Contains(t, body, "wren_http_requests_total")
	assert.Contains(t, body, "wren_db_queries_total")
	assert.Contains(t, body, "wren_http_inflight_requests")
}
