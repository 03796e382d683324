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

type CandidateRepository interface {
	Create(ctx context.Context, c domain.Candidate) (string, error)
	Update(ctx context.Context, c domain.Candidate) error
	FindById(ctx context.Context, id string) (domain.Candidate, error)
	FindByIds(ctx context.Context, ids []string) ([]domain.Candidate, error)
	List(ctx context.Context, offset, limit int) ([]domain.Candidate, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

func (r *candidateRepository) Create(ctx context.Context, c domain.Candidate) (string, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *candidateRepository) Update(ctx context.Context, c domain.Candidate) error {
	return r.dao.Update(ctx, r.toEntity(c))
}

func (r *candidateRepository) FindById(ctx context.Context, id string) (domain.Candidate, error) {
	found, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	return r.toDomain(found), nil
}

func (r *candidateRepository) FindByIds(ctx context.Context, ids []string) ([]domain.Candidate, error) {
	found, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) List(ctx context.Context, offset, limit int) ([]domain.Candidate, error) {
	found, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *candidateRepository) toEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		Id:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		ResumeURL: c.ResumeURL,
		Source:    c.Source,
	}
}

func (r *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		ResumeURL: c.ResumeURL,
		Source:    c.Source,
	}
}
