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

// Candidate 候选人表
type Candidate struct {
	Id        string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	Name      string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_candidate_name;comment:'姓名'"`
	Email     string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_candidate_email;comment:'邮箱'"`
	Phone     string `gorm:"type:VARCHAR(32);comment:'电话'"`
	Position  string `gorm:"type:VARCHAR(128);NOT NULL;comment:'应聘岗位'"`
	ResumeURL string `gorm:"type:VARCHAR(1024);comment:'简历URL'"`
	Source    string `gorm:"type:VARCHAR(64);comment:'简历来源'"`
	Deleted   uint8  `gorm:"type:TINYINT;NOT NULL;default:0;index:idx_candidate_deleted;comment:'软删除标记'"`

	Ctime int64
	Utime int64
}

func (Candidate) TableName() string {
	return "candidates"
}

type CandidateDAO interface {
	Create(ctx context.Context, c Candidate) (string, error)
	Update(ctx context.Context, c Candidate) error
	FindById(ctx context.Context, id string) (Candidate, error)
	FindByIds(ctx context.Context, ids []string) ([]Candidate, error)
	List(ctx context.Context, offset, limit int) ([]Candidate, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) CandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (g *GORMCandidateDAO) Create(ctx context.Context, c Candidate) (string, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMCandidateDAO) Update(ctx context.Context, c Candidate) error {
	return g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND deleted = 0", c.Id).
		Updates(map[string]any{
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"position":   c.Position,
			"resume_url": c.ResumeURL,
			"source":     c.Source,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (g *GORMCandidateDAO) FindById(ctx context.Context, id string) (Candidate, error) {
	var c Candidate
	err := g.active(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMCandidateDAO) FindByIds(ctx context.Context, ids []string) ([]Candidate, error) {
	var res []Candidate
	err := g.active(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMCandidateDAO) List(ctx context.Context, offset, limit int) ([]Candidate, error) {
	var res []Candidate
	err := g.active(ctx).Offset(offset).Limit(limit).Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMCandidateDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.active(ctx).Model(&Candidate{}).Count(&count).Error
	return count, err
}

func (g *GORMCandidateDAO) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMCandidateDAO) active(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Where("deleted = 0")
}
