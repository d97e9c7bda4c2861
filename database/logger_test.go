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

package database

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Debug("debug line", "k", "v")
	log.Info("info line", "host", "localhost")
	log.Warn("warn line", "duration", "1s")
	log.Error("error line", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, `"message":"debug line"`)
	assert.Contains(t, out, `"message":"info line"`)
	assert.Contains(t, out, `"host":"localhost"`)
	assert.Contains(t, out, `"message":"warn line"`)
	assert.Contains(t, out, `"message":"error line"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestZerologLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.SetLevel(LogLevelWarn)
	log.Info("suppressed", "k", "v")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "kept")
}

func TestZerologLoggerSkipsMalformedFieldPairs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	// Odd trailing value and a non-string key are dropped, not fatal.
	log.Info("partial fields", "valid", 1, 42, "ignored", "dangling")

	out := buf.String()
	assert.Contains(t, out, `"valid":1`)
	assert.NotContains(t, out, "ignored")
	assert.NotContains(t, out, "dangling")
}
