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
	"gorm.io/gorm/clause"
)

// Evaluation 评估记录表。
// (interview_id, round) 上有唯一索引，同一轮次重复提交走 upsert。
type Evaluation struct {
	Id                 int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewId        string `gorm:"type:CHAR(36);NOT NULL;uniqueIndex:unq_interview_round,priority:1;comment:'面试ID'"`
	Round              string `gorm:"type:ENUM('LEVEL_1','LEVEL_2');NOT NULL;uniqueIndex:unq_interview_round,priority:2;comment:'评估轮次'"`
	TechnicalScore     int    `gorm:"type:INT;NOT NULL;comment:'技术得分，1-10'"`
	CommunicationScore int    `gorm:"type:INT;NOT NULL;comment:'沟通得分，1-10'"`
	CultureScore       int    `gorm:"type:INT;NOT NULL;comment:'文化匹配得分，1-10'"`
	Recommendation     string `gorm:"type:ENUM('HIRE','MAYBE','NO_HIRE');NOT NULL;comment:'录用建议'"`
	Notes              string `gorm:"type:TEXT;comment:'评语'"`
	EvaluatorId        string `gorm:"type:CHAR(36);comment:'评估人的员工UUID'"`

	Ctime int64
	Utime int64
}

func (Evaluation) TableName() string {
	return "evaluations"
}

type EvaluationDAO interface {
	// Upsert 按 (interview_id, round) 幂等写入，不会影响另一轮次的记录
	Upsert(ctx context.Context, e Evaluation) error
	FindByInterview(ctx context.Context, interviewId string) ([]Evaluation, error)
	FindByInterviewAndRound(ctx context.Context, interviewId, round string) (Evaluation, error)
}

type GORMEvaluationDAO struct {
	db *egorm.Component
}

func NewGORMEvaluationDAO(db *egorm.Component) EvaluationDAO {
	return &GORMEvaluationDAO{db: db}
}

func (g *GORMEvaluationDAO) Upsert(ctx context.Context, e Evaluation) error {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "interview_id"}, {Name: "round"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"technical_score",
			"communication_score",
			"culture_score",
			"recommendation",
			"notes",
			"evaluator_id",
			"utime",
		}),
	}).Create(&e).Error
}

func (g *GORMEvaluationDAO) FindByInterview(ctx context.Context, interviewId string) ([]Evaluation, error) {
	var res []Evaluation
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewId).
		Order("round ASC").Find(&res).Error
	return res, err
}

func (g *GORMEvaluationDAO) FindByInterviewAndRound(ctx context.Context, interviewId, round string) (Evaluation, error) {
	var e Evaluation
	err := g.db.WithContext(ctx).
		Where("interview_id = ? AND round = ?", interviewId, round).
		First(&e).Error
	return e, err
}
