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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectScanValue(t *testing.T) {
	obj := JsonObject{"key": "value", "count": float64(2)}

	raw, err := obj.Value()
	require.NoError(t, err)

	var scanned JsonObject
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, obj, scanned)

	// NULL columns scan to an empty, usable map.
	var fromNull JsonObject
	require.NoError(t, fromNull.Scan(nil))
	assert.NotNil(t, fromNull)
	assert.Empty(t, fromNull)

	// TEXT-affinity columns come back as string.
	var fromString JsonObject
	require.NoError(t, fromString.Scan(`{"key":"value","count":2}`))
	assert.Equal(t, obj, fromString)

	assert.Error(t, scanned.Scan(123))
}

func TestJsonObjectNilValue(t *testing.T) {
	var obj JsonObject
	v, err := obj.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
