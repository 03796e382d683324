// Copyright 2025 lakshaytakkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/cache"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProductID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

// fakeCache 内存 map，记录命中即可
type fakeCache struct {
	products map[string]domain.Product
	lists    map[string][]domain.Product
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		products: make(map[string]domain.Product),
		lists:    make(map[string][]domain.Product),
	}
}

func (f *fakeCache) SetProduct(_ context.Context, p domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeCache) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, cache.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeCache) DelProduct(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeCache) SetList(_ context.Context, key string, products []domain.Product) error {
	f.lists[key] = products
	return nil
}

func (f *fakeCache) GetList(_ context.Context, key string) ([]domain.Product, error) {
	res, ok := f.lists[key]
	if !ok {
		return nil, cache.ErrProductNotFound
	}
	return res, nil
}

// countingDAO 只统计落库查询次数
type countingDAO struct {
	dao.ProductDAO
	product   dao.Product
	findCalls int
	listCalls int
	updated   dao.Product
}

func (c *countingDAO) FindById(_ context.Context, _ string) (dao.Product, error) {
	c.findCalls++
	return c.product, nil
}

func (c *countingDAO) List(_ context.Context, _ dao.Filter, _, _ int) ([]dao.Product, error) {
	c.listCalls++
	return []dao.Product{c.product}, nil
}

func (c *countingDAO) Update(_ context.Context, p dao.Product) error {
	c.updated = p
	return nil
}

func TestCachedProductRepository_FindById(t *testing.T) {
	t.Parallel()
	d := &countingDAO{product: dao.Product{
		Id:           testProductID,
		Sku:          "MUG-0001",
		Name:         "陶瓷马克杯",
		Status:       "ACTIVE",
		ListingState: "PUBLISHED",
	}}
	repo := NewCachedProductRepository(d, newFakeCache())

	first, err := repo.FindById(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, "MUG-0001", first.SKU)
	assert.Equal(t, 1, d.findCalls)

	// 第二次读走缓存，不再落库
	second, err := repo.FindById(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, d.findCalls)
}

func TestCachedProductRepository_List(t *testing.T) {
	t.Parallel()
	d := &countingDAO{product: dao.Product{Id: testProductID, Sku: "MUG-0001"}}
	repo := NewCachedProductRepository(d, newFakeCache())
	f := domain.Filter{Category: "KITCHEN"}

	_, err := repo.List(context.Background(), f, 0, 20)
	require.NoError(t, err)
	_, err = repo.List(context.Background(), f, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, d.listCalls)

	// 不同的过滤条件是不同的缓存键
	_, err = repo.List(context.Background(), domain.Filter{Category: "DECOR"}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, d.listCalls)
}

func TestCachedProductRepository_UpdateInvalidates(t *testing.T) {
	t.Parallel()
	d := &countingDAO{product: dao.Product{Id: testProductID, Sku: "MUG-0001"}}
	fc := newFakeCache()
	repo := NewCachedProductRepository(d, fc)

	_, err := repo.FindById(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Contains(t, fc.products, testProductID)

	err = repo.Update(context.Background(), domain.Product{
		ID:     testProductID,
		SKU:    "MUG-0001",
		Name:   "改名后的马克杯",
		Status: domain.StatusActive,
	})
	require.NoError(t, err)
	// 写入后详情缓存被失效
	assert.NotContains(t, fc.products, testProductID)
}
