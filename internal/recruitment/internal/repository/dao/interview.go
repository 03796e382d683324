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
)

// Interview 面试排期表
type Interview struct {
	Id            string `gorm:"type:CHAR(36);primaryKey;comment:'规范UUID'"`
	CandidateId   string `gorm:"type:CHAR(36);NOT NULL;index:idx_interview_candidate;comment:'候选人ID'"`
	Position      string `gorm:"type:VARCHAR(128);comment:'面试岗位'"`
	ScheduledAt   int64  `gorm:"NOT NULL;comment:'面试时间'"`
	InterviewerId string `gorm:"type:CHAR(36);comment:'面试官的员工UUID'"`
	Location      string `gorm:"type:VARCHAR(512);comment:'地点或会议链接'"`

	Ctime int64
	Utime int64
}

func (Interview) TableName() string {
	return "interviews"
}

type InterviewDAO interface {
	Create(ctx context.Context, i Interview) (string, error)
	Update(ctx context.Context, i Interview) error
	FindById(ctx context.Context, id string) (Interview, error)
	FindByCandidate(ctx context.Context, candidateId string) ([]Interview, error)
	List(ctx context.Context, offset, limit int) ([]Interview, error)
	Count(ctx context.Context) (int64, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, i Interview) (string, error) {
	now := time.Now().UnixMilli()
	i.Ctime, i.Utime = now, now
	err := g.db.WithContext(ctx).Create(&i).Error
	return i.Id, err
}

func (g *GORMInterviewDAO) Update(ctx context.Context, i Interview) error {
	return g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", i.Id).
		Updates(map[string]any{
			"position":       i.Position,
			"scheduled_at":   i.ScheduledAt,
			"interviewer_id": i.InterviewerId,
			"location":       i.Location,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (g *GORMInterviewDAO) FindById(ctx context.Context, id string) (Interview, error) {
	var i Interview
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	return i, err
}

func (g *GORMInterviewDAO) FindByCandidate(ctx context.Context, candidateId string) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).Where("candidate_id = ?", candidateId).
		Order("scheduled_at DESC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) List(ctx context.Context, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("scheduled_at DESC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Interview{}).Count(&count).Error
	return count, err
}
