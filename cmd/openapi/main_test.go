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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testBase = `
openapi: 3.0.3
info:
  title: test
  version: 0.1.0
paths: {}
components:
  schemas:
    ErrorResponse:
      type: object
`

func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunMergesFragments(t *testing.T) {
	dir := t.TempDir()
	base := writeYAML(t, dir, "base.yaml", testBase)
	writeYAML(t, dir, "items.yaml", `
paths:
  /items:
    get:
      summary: List items
components:
  schemas:
    Item:
      type: object
`)
	writeYAML(t, dir, "widgets.yaml", `
paths:
  /widgets:
    get:
      summary: List widgets
`)
	out := filepath.Join(dir, "out", "openapi.yaml")

	require.NoError(t, run(base, filepath.Join(dir, "*s.yaml"), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	merged := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal(data, &merged))

	paths, ok := merged["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/items")
	assert.Contains(t, paths, "/widgets")

	components := merged["components"].(map[string]interface{})
	schemas := components["schemas"].(map[string]interface{})
	assert.Contains(t, schemas, "ErrorResponse")
	assert.Contains(t, schemas, "Item")
}

func TestRunRejectsDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	base := writeYAML(t, dir, "base.yaml", testBase)
	writeYAML(t, dir, "a-items.yaml", "paths:\n  /items:\n    get: {}\n")
	writeYAML(t, dir, "b-items.yaml", "paths:\n  /items:\n    post: {}\n")

	err := run(base, filepath.Join(dir, "*-items.yaml"), filepath.Join(dir, "out.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate paths key")
}

func TestRunFailsWithoutFragments(t *testing.T) {
	dir := t.TempDir()
	base := writeYAML(t, dir, "base.yaml", testBase)

	err := run(base, filepath.Join(dir, "missing-*.yaml"), filepath.Join(dir, "out.yaml"))
	assert.Error(t, err)
}
