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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type Product struct {
	Id                  string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Sku                 string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:unq_product_sku;comment:'SKU'"`
	Name                string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_product_name;comment:'品名'"`
	Category            string `gorm:"type:VARCHAR(64);index:idx_product_category;comment:'类目'"`
	WholesalePriceCents int64  `gorm:"NOT NULL;comment:'批发价，分'"`
	RetailPriceCents    int64  `gorm:"NOT NULL;comment:'零售价，分'"`
	Stock               int64  `gorm:"NOT NULL;comment:'库存'"`
	Status              string `gorm:"type:VARCHAR(16);NOT NULL;comment:'生命周期'"`
	ListingState        string `gorm:"type:VARCHAR(16);NOT NULL;index:idx_product_listing;comment:'Faire上架状态'"`
	Deleted             uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_product_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Product) TableName() string {
	return "products"
}

type Filter struct {
	Category     string
	Status       string
	ListingState string
}

type ProductDAO interface {
	Create(ctx context.Context, p Product) (string, error)
	Update(ctx context.Context, p Product) error
	UpdateListingState(ctx context.Context, id, state string) error
	FindById(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Product, error)
	Count(ctx context.Context, f Filter) (int64, error)
	IdByField(ctx context.Context, column, value string) (string, error)
	Delete(ctx context.Context, id string) error
}

type GORMProductDAO struct {
	db *egorm.Component
}

func NewGORMProductDAO(db *egorm.Component) ProductDAO {
	return &GORMProductDAO{db: db}
}

func (g *GORMProductDAO) Create(ctx context.Context, p Product) (string, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMProductDAO) Update(ctx context.Context, p Product) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND deleted = 0", p.Id).
		Updates(map[string]any{
			"sku":                   p.Sku,
			"name":                  p.Name,
			"category":              p.Category,
			"wholesale_price_cents": p.WholesalePriceCents,
			"retail_price_cents":    p.RetailPriceCents,
			"stock":                 p.Stock,
			"status":                p.Status,
			"utime":                 time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProductDAO) UpdateListingState(ctx context.Context, id, state string) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"listing_state": state,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProductDAO) FindById(ctx context.Context, id string) (Product, error) {
	var p Product
	err := g.active(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMProductDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Product, error) {
	var res []Product
	err := g.filtered(ctx, f).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMProductDAO) Count(ctx context.Context, f Filter) (int64, error) {
	var count int64
	err := g.filtered(ctx, f).Model(&Product{}).Count(&count).Error
	return count, err
}

func (g *GORMProductDAO) IdByField(ctx context.Context, column, value string) (string, error) {
	var p Product
	err := g.active(ctx).Select("id").
		Where("LOWER("+column+") = LOWER(?)", value).
		First(&p).Error
	return p.Id, err
}

func (g *GORMProductDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProductDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}

func (g *GORMProductDAO) filtered(ctx context.Context, f Filter) *gorm.DB {
	query := g.active(ctx)
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.ListingState != "" {
		query = query.Where("listing_state = ?", f.ListingState)
	}
	return query
}
