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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tomoncle/wren/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

var (
	// ErrNotFound reports a mutation aimed at an id that does not exist.
	// Read operations signal absence with a nil entity instead.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownField reports a filter key outside the entity's allow-list.
	ErrUnknownField = errors.New("unknown filter field")
)

// CreateInput maps a validated create payload onto a new entity.
type CreateInput[T any] interface {
	NewEntity() *T
}

// UpdateInput merges the payload's present fields into an existing entity.
type UpdateInput[T any] interface {
	ApplyTo(*T)
}

// Timestamped is the contract entities satisfy so the repository can own
// timestamp assignment.
type Timestamped interface {
	StampCreated(time.Time)
	StampUpdated(time.Time)
}

// ReadRepository defines query operations for a generic entity type.
// Get returns (nil, nil) when the id is absent; storage failures are
// propagated unchanged.
type ReadRepository[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)

	List(ctx context.Context, w types.Window) ([]*T, error)

	ListPage(ctx context.Context, w types.Window) (*types.Page[T], error)

	Filter(ctx context.Context, filters map[string]interface{}, w types.Window) ([]*T, error)

	FilterPage(ctx context.Context, filters map[string]interface{}, w types.Window) (*types.Page[T], error)
}

// WriteRepository defines mutations, each scoped to its own transaction.
type WriteRepository[T any, C CreateInput[T], U UpdateInput[T]] interface {
	Create(ctx context.Context, input C) (*T, error)

	Update(ctx context.Context, existing *T, input U) (*T, error)

	Remove(ctx context.Context, id int64) (*T, error)
}

// Repository combines reads and writes and exposes Bun query builders for
// entity-specific lookups layered on top by composition.
type Repository[T any, C CreateInput[T], U UpdateInput[T]] interface {
	ReadRepository[T]
	WriteRepository[T, C, U]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
