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
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tomoncle/wren/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any, C CreateInput[T], U UpdateInput[T]] struct {
	db *bun.DB
	// filterColumns allow-lists the fields Filter may touch, keyed by the
	// exposed field name with the storage column as value.
	filterColumns map[string]string
}

// NewRepository returns a generic repository backed by the provided Bun DB.
// filterColumns may be nil for entities that never serve filtered queries.
func NewRepository[T any, C CreateInput[T], U UpdateInput[T]](db *bun.DB, filterColumns map[string]string) Repository[T, C, U] {
	return &baseRepositoryImpl[T, C, U]{db: db, filterColumns: filterColumns}
}

func (r *baseRepositoryImpl[T, C, U]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T, C, U]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T, C, U]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T, C, U]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T, C, U]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T, C, U]) List(ctx context.Context, w types.Window) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.windowed(r.db.NewSelect().Model(&entities), w).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, C, U]) ListPage(ctx context.Context, w types.Window) (*types.Page[T], error) {
	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	return r.scanPage(ctx, query, &entities, w)
}

func (r *baseRepositoryImpl[T, C, U]) Filter(ctx context.Context, filters map[string]interface{}, w types.Window) ([]*T, error) {
	entities := make([]*T, 0)
	query, err := r.applyFilters(r.db.NewSelect().Model(&entities), filters)
	if err != nil {
		return nil, err
	}
	if err := r.windowed(query, w).Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, C, U]) FilterPage(ctx context.Context, filters map[string]interface{}, w types.Window) (*types.Page[T], error) {
	entities := make([]*T, 0)
	query, err := r.applyFilters(r.db.NewSelect().Model(&entities), filters)
	if err != nil {
		return nil, err
	}
	return r.scanPage(ctx, query, &entities, w)
}

func (r *baseRepositoryImpl[T, C, U]) Create(ctx context.Context, input C) (*T, error) {
	entity := input.NewEntity()
	stampCreated(entity, time.Now().UTC())

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(entity).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, C, U]) Update(ctx context.Context, existing *T, input U) (*T, error) {
	if existing == nil {
		return nil, fmt.Errorf("update target: %w", ErrNotFound)
	}
	input.ApplyTo(existing)
	stampUpdated(existing, time.Now().UTC())

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().Model(existing).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *baseRepositoryImpl[T, C, U]) Remove(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("remove id=%d: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		_, err = tx.NewDelete().Model(&entity).Where("id = ?", id).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// windowed applies the offset/limit slice with a stable id ordering so the
// same window always selects the same records.
func (r *baseRepositoryImpl[T, C, U]) windowed(query *bun.SelectQuery, w types.Window) *bun.SelectQuery {
	return query.Order("id ASC").Offset(w.GetSkip()).Limit(w.GetLimit())
}

// scanPage counts matches before windowing, then scans the window; HasMore
// derives from the pre-window total against the window's far edge.
func (r *baseRepositoryImpl[T, C, U]) scanPage(ctx context.Context, query *bun.SelectQuery, entities *[]*T, w types.Window) (*types.Page[T], error) {
	total, err := query.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return types.EmptyPage[T](w), nil
	}
	if err := r.windowed(query, w).Scan(ctx); err != nil {
		return nil, err
	}
	return types.NewPage(*entities, total, w), nil
}

// applyFilters ANDs an equality condition per filter entry, resolving each
// key through the allow-list. Unknown keys fail with ErrUnknownField.
// Keys are sorted so the generated SQL is deterministic.
func (r *baseRepositoryImpl[T, C, U]) applyFilters(query *bun.SelectQuery, filters map[string]interface{}) (*bun.SelectQuery, error) {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		column, ok := r.filterColumns[key]
		if !ok {
			return nil, fmt.Errorf("filter %q: %w", key, ErrUnknownField)
		}
		query = query.Where("? = ?", bun.Ident(column), filters[key])
	}
	return query, nil
}

func stampCreated[T any](entity *T, now time.Time) {
	if ts, ok := any(entity).(Timestamped); ok {
		ts.StampCreated(now)
	}
}

func stampUpdated[T any](entity *T, now time.Time) {
	if ts, ok := any(entity).(Timestamped); ok {
		ts.StampUpdated(now)
	}
}
