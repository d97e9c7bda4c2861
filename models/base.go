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

package models

import "time"

// Base carries the identity and timestamp columns shared by every
// persisted entity. The store assigns ID on insert; the repository owns
// both timestamps: CreatedAt is set once, UpdatedAt on every mutation,
// and UpdatedAt >= CreatedAt always holds.
type Base struct {
	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// StampCreated sets both timestamps to now, establishing the creation
// invariant created_at == updated_at.
func (m *Base) StampCreated(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdated refreshes the mutation timestamp.
func (m *Base) StampUpdated(now time.Time) {
	m.UpdatedAt = now
}

// PK returns the assigned identifier.
func (m *Base) PK() int64 {
	return m.ID
}
