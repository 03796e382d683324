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

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidInterview 排期信息不完整
var ErrInvalidInterview = errors.New("面试信息不完整")

type InterviewService interface {
	// Save 排期或改期。interviewer 可以是员工编码、邮箱、姓名或 UUID，
	// 允许为空（未定面试官）。
	Save(ctx context.Context, i domain.Interview, interviewer string) (string, error)
	// Detail 返回面试详情，聚合评估记录与推导状态
	Detail(ctx context.Context, id string) (domain.Interview, error)
	List(ctx context.Context, offset, limit int) ([]domain.Interview, int64, error)
	ByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error)
}

type interviewService struct {
	repo          repository.InterviewRepository
	evalRepo      repository.EvaluationRepository
	candidateRepo repository.CandidateRepository
	employeeRsv   *resolver.Resolver
}

func NewInterviewService(
	repo repository.InterviewRepository,
	evalRepo repository.EvaluationRepository,
	candidateRepo repository.CandidateRepository,
	employeeRsv *resolver.Resolver,
) InterviewService {
	return &interviewService{
		repo:          repo,
		evalRepo:      evalRepo,
		candidateRepo: candidateRepo,
		employeeRsv:   employeeRsv,
	}
}

func (s *interviewService) Save(ctx context.Context, i domain.Interview, interviewer string) (string, error) {
	if !i.IsValid() {
		return "", ErrInvalidInterview
	}
	// 候选人必须存在且未删除
	_, err := s.candidateRepo.FindById(ctx, i.CandidateID)
	if err != nil {
		return "", err
	}
	interviewerID, err := s.employeeRsv.Resolve(ctx, interviewer, false)
	if err != nil {
		return "", err
	}
	i.InterviewerID = interviewerID
	if i.ID == "" {
		i.ID = uuid.NewString()
		return s.repo.Create(ctx, i)
	}
	return i.ID, s.repo.Update(ctx, i)
}

func (s *interviewService) Detail(ctx context.Context, id string) (domain.Interview, error) {
	i, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	var eg errgroup.Group
	eg.Go(func() error {
		c, err := s.candidateRepo.FindById(ctx, i.CandidateID)
		if err == nil {
			i.CandidateName = c.Name
		}
		return err
	})
	eg.Go(func() error {
		evals, err := s.evalRepo.FindByInterview(ctx, i.ID)
		if err != nil {
			return err
		}
		i.Evaluations = evals
		i.Status = domain.DeriveStatus(evals)
		return nil
	})
	return i, eg.Wait()
}

func (s *interviewService) List(ctx context.Context, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		interviews []domain.Interview
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		interviews, err = s.repo.List(ctx, offset, limit)
		if err != nil {
			return err
		}
		return s.fillCandidateNames(ctx, interviews)
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return interviews, total, eg.Wait()
}

func (s *interviewService) ByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	return s.repo.FindByCandidate(ctx, candidateID)
}

func (s *interviewService) fillCandidateNames(ctx context.Context, interviews []domain.Interview) error {
	if len(interviews) == 0 {
		return nil
	}
	ids := slice.Map(interviews, func(_ int, src domain.Interview) string {
		return src.CandidateID
	})
	candidates, err := s.candidateRepo.FindByIds(ctx, ids)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}
	for idx := range interviews {
		interviews[idx].CandidateName = names[interviews[idx].CandidateID]
	}
	return nil
}
