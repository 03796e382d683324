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

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidCandidate 必填字段缺失
var ErrInvalidCandidate = errors.New("候选人信息不完整")

type CandidateService interface {
	Save(ctx context.Context, c domain.Candidate) (string, error)
	Detail(ctx context.Context, id string) (domain.Candidate, error)
	List(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error)
	Delete(ctx context.Context, id string) error
}

type candidateService struct {
	repo repository.CandidateRepository
}

func NewCandidateService(repo repository.CandidateRepository) CandidateService {
	return &candidateService{repo: repo}
}

func (s *candidateService) Save(ctx context.Context, c domain.Candidate) (string, error) {
	if !c.IsValid() {
		return "", ErrInvalidCandidate
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
		return s.repo.Create(ctx, c)
	}
	return c.ID, s.repo.Update(ctx, c)
}

func (s *candidateService) Detail(ctx context.Context, id string) (domain.Candidate, error) {
	return s.repo.FindById(ctx, id)
}

func (s *candidateService) List(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error) {
	var (
		candidates []domain.Candidate
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		candidates, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return candidates, total, eg.Wait()
}

func (s *candidateService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
