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

// Client LLC 客户表。
// 并发改 stage 采用后写覆盖，内部低频工具不做乐观锁。
type Client struct {
	Id          string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	CompanyName string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_client_company_name;comment:'公司名'"`
	ContactName string `gorm:"type:VARCHAR(256);comment:'联系人'"`
	Email       string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_client_email;comment:'联系邮箱'"`
	Phone       string `gorm:"type:VARCHAR(32);comment:'电话'"`
	State       string `gorm:"type:VARCHAR(64);NOT NULL;comment:'注册州'"`
	Ein         string `gorm:"column:ein;type:VARCHAR(32);comment:'联邦税号'"`
	Notes       string `gorm:"type:TEXT;comment:'备注'"`
	Stage       string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_client_stage;comment:'当前阶段'"`
	Deleted     uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_client_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Client) TableName() string {
	return "clients"
}

type ClientDAO interface {
	Create(ctx context.Context, c Client) (string, error)
	Update(ctx context.Context, c Client) error
	UpdateStage(ctx context.Context, id, stage string) error
	FindById(ctx context.Context, id string) (Client, error)
	// FindAll 看板一次拉全量，内部客户量在千以内
	FindAll(ctx context.Context) ([]Client, error)
	List(ctx context.Context, offset, limit int) ([]Client, error)
	Count(ctx context.Context) (int64, error)
	IdByField(ctx context.Context, column, value string) (string, error)
	Delete(ctx context.Context, id string) error
}

type GORMClientDAO struct {
	db *egorm.Component
}

func NewGORMClientDAO(db *egorm.Component) ClientDAO {
	return &GORMClientDAO{db: db}
}

func (g *GORMClientDAO) Create(ctx context.Context, c Client) (string, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMClientDAO) Update(ctx context.Context, c Client) error {
	return g.db.WithContext(ctx).Model(&Client{}).
		Where("id = ? AND deleted = 0", c.Id).
		Updates(map[string]any{
			"company_name": c.CompanyName,
			"contact_name": c.ContactName,
			"email":        c.Email,
			"phone":        c.Phone,
			"state":        c.State,
			"ein":          c.Ein,
			"notes":        c.Notes,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (g *GORMClientDAO) UpdateStage(ctx context.Context, id, stage string) error {
	return g.db.WithContext(ctx).Model(&Client{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"stage": stage,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (g *GORMClientDAO) FindById(ctx context.Context, id string) (Client, error) {
	var c Client
	err := g.active(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMClientDAO) FindAll(ctx context.Context) ([]Client, error) {
	var res []Client
	err := g.active(ctx).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMClientDAO) List(ctx context.Context, offset, limit int) ([]Client, error) {
	var res []Client
	err := g.active(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMClientDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.active(ctx).Model(&Client{}).Count(&count).Error
	return count, err
}

func (g *GORMClientDAO) IdByField(ctx context.Context, column, value string) (string, error) {
	var c Client
	err := g.active(ctx).Select("id").
		Where("LOWER("+column+") = LOWER(?)", value).
		First(&c).Error
	return c.Id, err
}

func (g *GORMClientDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMClientDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}
