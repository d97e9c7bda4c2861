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

// Default and maximum values applied by Window normalization.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Window describes an offset/limit slice over an ordered record set.
// The zero value means "first DefaultLimit records".
type Window struct {
	Skip  int
	Limit int
}

// NewWindow constructs a Window from raw caller-supplied values.
// Values are normalized lazily by GetSkip/GetLimit.
func NewWindow(skip, limit int) Window {
	return Window{Skip: skip, Limit: limit}
}

// GetSkip returns the offset, clamping negative values to DefaultSkip.
func (w Window) GetSkip() int {
	if w.Skip < 0 {
		return DefaultSkip
	}
	return w.Skip
}

// GetLimit returns the page size. Non-positive values fall back to
// DefaultLimit, values above MaxLimit are clamped to MaxLimit.
func (w Window) GetLimit() int {
	if w.Limit <= 0 {
		return DefaultLimit
	}
	if w.Limit > MaxLimit {
		return MaxLimit
	}
	return w.Limit
}

// End returns the far edge of the window (skip + limit).
func (w Window) End() int {
	return w.GetSkip() + w.GetLimit()
}

// Page holds a windowed result set together with pagination metadata.
// Total counts all matching records before the window is applied, and
// HasMore reports whether Total exceeds the window's far edge.
type Page[T any] struct {
	Items   []*T `json:"items"`
	Total   int  `json:"total"`
	Skip    int  `json:"skip"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// NewPage builds a Page from items, the pre-window total, and the window
// that produced the items.
func NewPage[T any](items []*T, total int, w Window) *Page[T] {
	if items == nil {
		items = make([]*T, 0)
	}
	return &Page[T]{
		Items:   items,
		Total:   total,
		Skip:    w.GetSkip(),
		Limit:   w.GetLimit(),
		HasMore: total > w.End(),
	}
}

// EmptyPage returns a Page with no items for the given window.
func EmptyPage[T any](w Window) *Page[T] {
	return NewPage[T](nil, 0, w)
}
