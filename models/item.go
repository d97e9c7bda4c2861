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

import (
	"github.com/tomoncle/wren/types"
	"github.com/uptrace/bun"
)

// Item is the concrete entity served by the scaffold.
// IsActive carries no SQL default: NewEntity owns the fallback, so an
// explicit false survives the insert instead of being swallowed by a
// column DEFAULT.
type Item struct {
	bun.BaseModel `bun:"table:item,alias:i"`
	Base

	Name        string           `bun:"name,notnull" json:"name"`
	Description string           `bun:"description" json:"description"`
	IsActive    bool             `bun:"is_active,notnull" json:"is_active"`
	Metadata    types.JsonObject `bun:"metadata" json:"metadata,omitempty"`
}

// ItemFilterColumns is the allow-list mapping exposed filter keys to
// storage columns. Filter requests naming any other key are rejected.
var ItemFilterColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"is_active":   "is_active",
}

// ItemCreate is the validated create payload. IsActive defaults to true
// when the field is omitted.
type ItemCreate struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	IsActive    types.Optional[bool] `json:"is_active"`
	Metadata    types.JsonObject     `json:"metadata"`
}

// NewEntity maps the payload onto a fresh, unpersisted Item.
func (c *ItemCreate) NewEntity() *Item {
	item := &Item{
		Name:        c.Name,
		Description: c.Description,
		IsActive:    true,
		Metadata:    c.Metadata,
	}
	if v, ok := c.IsActive.Get(); ok {
		item.IsActive = v
	}
	return item
}

// ItemUpdate is the partial update payload. Every field is presence
// tagged: only fields that appeared in the request overwrite the entity.
type ItemUpdate struct {
	Name        types.Optional[string]           `json:"name"`
	Description types.Optional[string]           `json:"description"`
	IsActive    types.Optional[bool]             `json:"is_active"`
	Metadata    types.Optional[types.JsonObject] `json:"metadata"`
}

// ApplyTo merges the set fields into an existing Item, leaving unset
// fields untouched.
func (u *ItemUpdate) ApplyTo(item *Item) {
	if v, ok := u.Name.Get(); ok {
		item.Name = v
	}
	if v, ok := u.Description.Get(); ok {
		item.Description = v
	}
	if v, ok := u.IsActive.Get(); ok {
		item.IsActive = v
	}
	if v, ok := u.Metadata.Get(); ok {
		item.Metadata = v
	}
}
