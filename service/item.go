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

package service

import (
	"context"

	"github.com/tomoncle/wren/models"
	"github.com/tomoncle/wren/repository"

	"github.com/uptrace/bun"
)

// ItemService serves the Item use cases. CRUD comes from the embedded
// generic service; only Item-specific lookups are added here.
type ItemService struct {
	*Service[models.Item, *models.ItemCreate, *models.ItemUpdate]
	repo *repository.ItemRepository
}

// NewItemService builds an ItemService over the given Bun DB.
func NewItemService(db *bun.DB) *ItemService {
	repo := repository.NewItemRepository(db)
	return &ItemService{
		Service: NewService[models.Item, *models.ItemCreate, *models.ItemUpdate](repo),
		repo:    repo,
	}
}

// GetByName returns the item with the given name, or (nil, nil) when absent.
func (s *ItemService) GetByName(ctx context.Context, name string) (*models.Item, error) {
	return s.repo.GetByName(ctx, name)
}
