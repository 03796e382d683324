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

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

// ErrEvaluationNotFound 指定轮次还没有评估记录
var ErrEvaluationNotFound = errors.New("评估记录不存在")

//go:generate mockgen -source=./evaluation.go -destination=./mocks/evaluation.mock.go -package=repomocks EvaluationRepository
type EvaluationRepository interface {
	// Upsert 按 (interviewID, round) 幂等写入
	Upsert(ctx context.Context, e domain.Evaluation) error
	FindByInterview(ctx context.Context, interviewID string) ([]domain.Evaluation, error)
	FindByInterviewAndRound(ctx context.Context, interviewID string, round domain.Round) (domain.Evaluation, error)
}

type evaluationRepository struct {
	dao dao.EvaluationDAO
}

func NewEvaluationRepository(d dao.EvaluationDAO) EvaluationRepository {
	return &evaluationRepository{dao: d}
}

func (r *evaluationRepository) Upsert(ctx context.Context, e domain.Evaluation) error {
	return r.dao.Upsert(ctx, r.toEntity(e))
}

func (r *evaluationRepository) FindByInterview(ctx context.Context, interviewID string) ([]domain.Evaluation, error) {
	found, err := r.dao.FindByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Evaluation) domain.Evaluation {
		return r.toDomain(src)
	}), nil
}

func (r *evaluationRepository) FindByInterviewAndRound(ctx context.Context, interviewID string, round domain.Round) (domain.Evaluation, error) {
	found, err := r.dao.FindByInterviewAndRound(ctx, interviewID, round.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Evaluation{}, ErrEvaluationNotFound
	}
	if err != nil {
		return domain.Evaluation{}, err
	}
	return r.toDomain(found), nil
}

func (r *evaluationRepository) toEntity(e domain.Evaluation) dao.Evaluation {
	return dao.Evaluation{
		Id:                 e.ID,
		InterviewId:        e.InterviewID,
		Round:              e.Round.String(),
		TechnicalScore:     e.TechnicalScore,
		CommunicationScore: e.CommunicationScore,
		CultureScore:       e.CultureScore,
		Recommendation:     e.Recommendation.String(),
		Notes:              e.Notes,
		EvaluatorId:        e.EvaluatorID,
	}
}

func (r *evaluationRepository) toDomain(e dao.Evaluation) domain.Evaluation {
	return domain.Evaluation{
		ID:                 e.Id,
		InterviewID:        e.InterviewId,
		Round:              domain.Round(e.Round),
		TechnicalScore:     e.TechnicalScore,
		CommunicationScore: e.CommunicationScore,
		CultureScore:       e.CultureScore,
		Recommendation:     domain.Recommendation(e.Recommendation),
		Notes:              e.Notes,
		EvaluatorID:        e.EvaluatorId,
	}
}
