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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/pkg/errors"
)

const (
	// 详情在写入时会被精确失效，可以放得久一些
	detailExpiration = 24 * time.Hour
	// 列表按过滤条件组合出 key，写入时无法枚举失效，
	// 靠短 TTL 收敛
	listExpiration = time.Minute
)

var ErrProductNotFound = errors.New("商品缓存未命中")

type ProductCache interface {
	SetProduct(ctx context.Context, p domain.Product) error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	DelProduct(ctx context.Context, id string) error
	SetList(ctx context.Context, key string, products []domain.Product) error
	GetList(ctx context.Context, key string) ([]domain.Product, error)
}

type productCache struct {
	ec ecache.Cache
}

func NewProductCache(ec ecache.Cache) ProductCache {
	return &productCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "products:",
		},
	}
}

func (c *productCache) SetProduct(ctx context.Context, p domain.Product) error {
	bytes, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化商品失败")
	}
	return c.ec.Set(ctx, c.productKey(p.ID), string(bytes), detailExpiration)
}

func (c *productCache) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	val := c.ec.Get(ctx, c.productKey(id))
	if val.KeyNotFound() {
		return domain.Product{}, ErrProductNotFound
	}
	if val.Err != nil {
		return domain.Product{}, val.Err
	}
	var p domain.Product
	err := json.Unmarshal([]byte(val.Val.(string)), &p)
	return p, errors.Wrap(err, "反序列化商品失败")
}

func (c *productCache) DelProduct(ctx context.Context, id string) error {
	_, err := c.ec.Delete(ctx, c.productKey(id))
	return err
}

func (c *productCache) SetList(ctx context.Context, key string, products []domain.Product) error {
	bytes, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "序列化商品列表失败")
	}
	return c.ec.Set(ctx, c.listKey(key), string(bytes), listExpiration)
}

func (c *productCache) GetList(ctx context.Context, key string) ([]domain.Product, error) {
	val := c.ec.Get(ctx, c.listKey(key))
	if val.KeyNotFound() {
		return nil, ErrProductNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var res []domain.Product
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化商品列表失败")
}

func (c *productCache) productKey(id string) string {
	return fmt.Sprintf("detail:%s", id)
}

func (c *productCache) listKey(key string) string {
	return fmt.Sprintf("list:%s", key)
}
