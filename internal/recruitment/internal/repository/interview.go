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

	"github.com/ecodeclub/ekit/slice"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository/dao"
)

//go:generate mockgen -source=./interview.go -destination=./mocks/interview.mock.go -package=repomocks InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, i domain.Interview) (string, error)
	Update(ctx context.Context, i domain.Interview) error
	FindById(ctx context.Context, id string) (domain.Interview, error)
	FindByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error)
	List(ctx context.Context, offset, limit int) ([]domain.Interview, error)
	Count(ctx context.Context) (int64, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, i domain.Interview) (string, error) {
	return r.dao.Create(ctx, r.toEntity(i))
}

func (r *interviewRepository) Update(ctx context.Context, i domain.Interview) error {
	return r.dao.Update(ctx, r.toEntity(i))
}

func (r *interviewRepository) FindById(ctx context.Context, id string) (domain.Interview, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(found), nil
}

func (r *interviewRepository) FindByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	found, err := r.dao.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) List(ctx context.Context, offset, limit int) ([]domain.Interview, error) {
	found, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *interviewRepository) toEntity(i domain.Interview) dao.Interview {
	return dao.Interview{
		Id:            i.ID,
		CandidateId:   i.CandidateID,
		Position:      i.Position,
		ScheduledAt:   i.ScheduledAt,
		InterviewerId: i.InterviewerID,
		Location:      i.Location,
	}
}

func (r *interviewRepository) toDomain(i dao.Interview) domain.Interview {
	return domain.Interview{
		ID:            i.Id,
		CandidateID:   i.CandidateId,
		Position:      i.Position,
		ScheduledAt:   i.ScheduledAt,
		InterviewerID: i.InterviewerId,
		Location:      i.Location,
	}
}
