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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/cache"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (string, error)
	Update(ctx context.Context, p domain.Product) error
	UpdateListingState(ctx context.Context, id string, state domain.ListingState) error
	FindById(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	Delete(ctx context.Context, id string) error
}

// cachedProductRepository 读多写少，详情和列表都走旁路缓存。
// 缓存操作失败只记日志，数据库是唯一事实来源。
type cachedProductRepository struct {
	dao    dao.ProductDAO
	cache  cache.ProductCache
	logger *elog.Component
}

func NewCachedProductRepository(d dao.ProductDAO, c cache.ProductCache) ProductRepository {
	return &cachedProductRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *cachedProductRepository) Create(ctx context.Context, p domain.Product) (string, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *cachedProductRepository) Update(ctx context.Context, p domain.Product) error {
	err := r.dao.Update(ctx, r.toEntity(p))
	if err != nil {
		return err
	}
	r.invalidate(ctx, p.ID)
	return nil
}

func (r *cachedProductRepository) UpdateListingState(ctx context.Context, id string, state domain.ListingState) error {
	err := r.dao.UpdateListingState(ctx, id, state.String())
	if err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedProductRepository) FindById(ctx context.Context, id string) (domain.Product, error) {
	p, err := r.cache.GetProduct(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, cache.ErrProductNotFound) {
		r.logger.Error("读商品缓存失败", elog.FieldErr(err))
	}
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res := r.toDomain(found)
	if err = r.cache.SetProduct(ctx, res); err != nil {
		r.logger.Error("回填商品缓存失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *cachedProductRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Product, error) {
	key := r.listKey(f, offset, limit)
	cached, err := r.cache.GetList(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrProductNotFound) {
		r.logger.Error("读商品列表缓存失败", elog.FieldErr(err))
	}
	found, err := r.dao.List(ctx, r.toFilter(f), offset, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(found, func(_ int, src dao.Product) domain.Product {
		return r.toDomain(src)
	})
	if err = r.cache.SetList(ctx, key, res); err != nil {
		r.logger.Error("回填商品列表缓存失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *cachedProductRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.Count(ctx, r.toFilter(f))
}

func (r *cachedProductRepository) Delete(ctx context.Context, id string) error {
	err := r.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedProductRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.DelProduct(ctx, id); err != nil {
		r.logger.Error("失效商品缓存失败",
			elog.FieldErr(err),
			elog.String("productID", id))
	}
}

func (r *cachedProductRepository) listKey(f domain.Filter, offset, limit int) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d",
		f.Category, f.Status, f.ListingState, offset, limit)
}

func (r *cachedProductRepository) toFilter(f domain.Filter) dao.Filter {
	return dao.Filter{
		Category:     f.Category,
		Status:       f.Status.String(),
		ListingState: f.ListingState.String(),
	}
}

func (r *cachedProductRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:                  p.ID,
		Sku:                 p.SKU,
		Name:                p.Name,
		Category:            p.Category,
		WholesalePriceCents: p.WholesalePriceCents,
		RetailPriceCents:    p.RetailPriceCents,
		Stock:               p.Stock,
		Status:              p.Status.String(),
		ListingState:        p.ListingState.String(),
	}
}

func (r *cachedProductRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:                  p.Id,
		SKU:                 p.Sku,
		Name:                p.Name,
		Category:            p.Category,
		WholesalePriceCents: p.WholesalePriceCents,
		RetailPriceCents:    p.RetailPriceCents,
		Stock:               p.Stock,
		Status:              domain.Status(p.Status),
		ListingState:        domain.ListingState(p.ListingState),
	}
}
