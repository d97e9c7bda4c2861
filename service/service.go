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

// Package service orchestrates repository calls per use case. It holds no
// business logic beyond delegation and absence translation: a missing
// entity is returned as (nil, nil) so the boundary layer can render a
// not-found response without knowing storage details.
package service

import (
	"context"
	"errors"

	"github.com/tomoncle/wren/repository"
	"github.com/tomoncle/wren/types"
)

// Service exposes one operation per use case over a generic repository.
type Service[T any, C repository.CreateInput[T], U repository.UpdateInput[T]] struct {
	repo repository.Repository[T, C, U]
}

// NewService wraps the given repository.
func NewService[T any, C repository.CreateInput[T], U repository.UpdateInput[T]](repo repository.Repository[T, C, U]) *Service[T, C, U] {
	return &Service[T, C, U]{repo: repo}
}

// List returns a window of entities, restricted by the equality filters
// when any are given.
func (s *Service[T, C, U]) List(ctx context.Context, filters map[string]interface{}, w types.Window) ([]*T, error) {
	if len(filters) > 0 {
		return s.repo.Filter(ctx, filters, w)
	}
	return s.repo.List(ctx, w)
}

// ListPage is List with pagination metadata computed before windowing.
func (s *Service[T, C, U]) ListPage(ctx context.Context, filters map[string]interface{}, w types.Window) (*types.Page[T], error) {
	if len(filters) > 0 {
		return s.repo.FilterPage(ctx, filters, w)
	}
	return s.repo.ListPage(ctx, w)
}

// Create persists a new entity from the validated input.
func (s *Service[T, C, U]) Create(ctx context.Context, input C) (*T, error) {
	return s.repo.Create(ctx, input)
}

// Get returns the entity with the given id, or (nil, nil) when absent.
func (s *Service[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the input's present fields into the stored entity and
// returns the result, or (nil, nil) when the id is absent.
func (s *Service[T, C, U]) Update(ctx context.Context, id int64, input U) (*T, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return s.repo.Update(ctx, existing, input)
}

// Delete removes the entity and returns its pre-deletion snapshot, or
// (nil, nil) when the id is absent.
func (s *Service[T, C, U]) Delete(ctx context.Context, id int64) (*T, error) {
	entity, err := s.repo.Remove(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}
