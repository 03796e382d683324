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

type Project struct {
	Id          string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Name        string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_project_name;comment:'项目名'"`
	Description string `gorm:"type:TEXT;comment:'描述'"`
	ClientId    string `gorm:"type:CHAR(36);index:idx_project_client;comment:'客户UUID，可为空'"`
	LeadId      string `gorm:"type:CHAR(36);index:idx_project_lead;comment:'负责人员工UUID，可为空'"`
	Stage       string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_project_stage;comment:'当前阶段'"`
	Health      string `gorm:"type:VARCHAR(16);NOT NULL;comment:'健康度'"`
	Deleted     uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_project_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Project) TableName() string {
	return "projects"
}

type ProjectDAO interface {
	Create(ctx context.Context, p Project) (string, error)
	Update(ctx context.Context, p Project) error
	UpdateStage(ctx context.Context, id, stage string) error
	FindById(ctx context.Context, id string) (Project, error)
	FindAll(ctx context.Context) ([]Project, error)
	List(ctx context.Context, offset, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (g *GORMProjectDAO) Create(ctx context.Context, p Project) (string, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMProjectDAO) Update(ctx context.Context, p Project) error {
	return g.db.WithContext(ctx).Model(&Project{}).
		Where("id = ? AND deleted = 0", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"client_id":   p.ClientId,
			"lead_id":     p.LeadId,
			"health":      p.Health,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProjectDAO) UpdateStage(ctx context.Context, id, stage string) error {
	return g.db.WithContext(ctx).Model(&Project{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"stage": stage,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProjectDAO) FindById(ctx context.Context, id string) (Project, error) {
	var p Project
	err := g.active(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMProjectDAO) FindAll(ctx context.Context) ([]Project, error) {
	var res []Project
	err := g.active(ctx).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) List(ctx context.Context, offset, limit int) ([]Project, error) {
	var res []Project
	err := g.active(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMProjectDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.active(ctx).Model(&Project{}).Count(&count).Error
	return count, err
}

func (g *GORMProjectDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProjectDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}
