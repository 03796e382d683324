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

	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository"
)

var (
	// ErrInvalidEvaluation 轮次、建议或子分不合法
	ErrInvalidEvaluation = errors.New("评估信息不合法")
	// ErrLevelOneMissing 还没有初评就提交复评
	ErrLevelOneMissing = errors.New("复评之前必须先有初评")
	// ErrLevelOneRejected 初评已给出不录用，不再接受复评
	ErrLevelOneRejected = errors.New("初评不录用的面试不接受复评")
)

// EvaluationService 实现两轮评估的审批链。
// 复评的前置条件在这里强制校验，不依赖前端把按钮藏起来。
type EvaluationService interface {
	// Record 写入或覆盖一轮评估，返回写入后的综合状态。
	// 同一 (面试, 轮次) 重复提交是幂等的 upsert，不会产生第二行。
	Record(ctx context.Context, e domain.Evaluation) (domain.EvalStatus, error)
	// Progress 返回一场面试当前的综合状态和全部评估记录
	Progress(ctx context.Context, interviewID string) (domain.EvalStatus, []domain.Evaluation, error)
}

type evaluationService struct {
	interviewRepo repository.InterviewRepository
	repo          repository.EvaluationRepository
}

func NewEvaluationService(
	interviewRepo repository.InterviewRepository,
	repo repository.EvaluationRepository,
) EvaluationService {
	return &evaluationService{
		interviewRepo: interviewRepo,
		repo:          repo,
	}
}

func (s *evaluationService) Record(ctx context.Context, e domain.Evaluation) (domain.EvalStatus, error) {
	if !e.IsValid() {
		return "", ErrInvalidEvaluation
	}
	// 面试必须存在
	_, err := s.interviewRepo.FindById(ctx, e.InterviewID)
	if err != nil {
		return "", err
	}
	if e.Round == domain.RoundLevel2 {
		if err := s.checkLevelOne(ctx, e.InterviewID); err != nil {
			return "", err
		}
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return "", err
	}
	evals, err := s.repo.FindByInterview(ctx, e.InterviewID)
	if err != nil {
		return "", err
	}
	return domain.DeriveStatus(evals), nil
}

// checkLevelOne 校验复评的前置条件：初评存在且建议不是不录用
func (s *evaluationService) checkLevelOne(ctx context.Context, interviewID string) error {
	l1, err := s.repo.FindByInterviewAndRound(ctx, interviewID, domain.RoundLevel1)
	if errors.Is(err, repository.ErrEvaluationNotFound) {
		return ErrLevelOneMissing
	}
	if err != nil {
		return err
	}
	if l1.Recommendation == domain.RecommendNoHire {
		return ErrLevelOneRejected
	}
	return nil
}

func (s *evaluationService) Progress(ctx context.Context, interviewID string) (domain.EvalStatus, []domain.Evaluation, error) {
	evals, err := s.repo.FindByInterview(ctx, interviewID)
	if err != nil {
		return "", nil, err
	}
	return domain.DeriveStatus(evals), evals, nil
}
