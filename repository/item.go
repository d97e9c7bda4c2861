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

	"github.com/tomoncle/wren/models"

	"github.com/uptrace/bun"
)

// ItemRepository composes the generic repository with Item-specific
// lookups instead of duplicating CRUD wiring.
type ItemRepository struct {
	Repository[models.Item, *models.ItemCreate, *models.ItemUpdate]
	db *bun.DB
}

// NewItemRepository builds an Item repository over the given Bun DB.
func NewItemRepository(db *bun.DB) *ItemRepository {
	return &ItemRepository{
		Repository: NewRepository[models.Item, *models.ItemCreate, *models.ItemUpdate](db, models.ItemFilterColumns),
		db:         db,
	}
}

// GetByName returns the item with the given unique name, or (nil, nil)
// when no such item exists.
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	err := r.db.NewSelect().Model(&item).Where("name = ?", name).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
