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
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository"
	repomocks "github.com/lakshaytakkar/team-portal/internal/recruitment/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const interviewID = "0b0b43be-58f4-4d28-9577-1e1c1a3e1f10"

func levelOne(rec domain.Recommendation) domain.Evaluation {
	return domain.Evaluation{
		InterviewID:        interviewID,
		Round:              domain.RoundLevel1,
		TechnicalScore:     8,
		CommunicationScore: 7,
		CultureScore:       9,
		Recommendation:     rec,
	}
}

func levelTwo(rec domain.Recommendation) domain.Evaluation {
	e := levelOne(rec)
	e.Round = domain.RoundLevel2
	return e
}

func TestEvaluationService_Record(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository)
		evaluation domain.Evaluation
		wantStatus domain.EvalStatus
		wantErr    error
	}{
		{
			name: "初评正常落库",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository) {
				interviewRepo := repomocks.NewMockInterviewRepository(ctrl)
				interviewRepo.EXPECT().FindById(gomock.Any(), interviewID).
					Return(domain.Interview{ID: interviewID}, nil)
				evalRepo := repomocks.NewMockEvaluationRepository(ctrl)
				evalRepo.EXPECT().Upsert(gomock.Any(), levelOne(domain.RecommendHire)).Return(nil)
				evalRepo.EXPECT().FindByInterview(gomock.Any(), interviewID).
					Return([]domain.Evaluation{levelOne(domain.RecommendHire)}, nil)
				return interviewRepo, evalRepo
			},
			evaluation: levelOne(domain.RecommendHire),
			wantStatus: domain.EvalPendingLevel2,
		},
		{
			name: "复评正常落库-状态完成",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository) {
				interviewRepo := repomocks.NewMockInterviewRepository(ctrl)
				interviewRepo.EXPECT().FindById(gomock.Any(), interviewID).
					Return(domain.Interview{ID: interviewID}, nil)
				evalRepo := repomocks.NewMockEvaluationRepository(ctrl)
				evalRepo.EXPECT().FindByInterviewAndRound(gomock.Any(), interviewID, domain.RoundLevel1).
					Return(levelOne(domain.RecommendHire), nil)
				evalRepo.EXPECT().Upsert(gomock.Any(), levelTwo(domain.RecommendHire)).Return(nil)
				evalRepo.EXPECT().FindByInterview(gomock.Any(), interviewID).
					Return([]domain.Evaluation{
						levelOne(domain.RecommendHire),
						levelTwo(domain.RecommendHire),
					}, nil)
				return interviewRepo, evalRepo
			},
			evaluation: levelTwo(domain.RecommendHire),
			wantStatus: domain.EvalCompleted,
		},
		{
			name: "没有初评时拒绝复评",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository) {
				interviewRepo := repomocks.NewMockInterviewRepository(ctrl)
				interviewRepo.EXPECT().FindById(gomock.Any(), interviewID).
					Return(domain.Interview{ID: interviewID}, nil)
				evalRepo := repomocks.NewMockEvaluationRepository(ctrl)
				evalRepo.EXPECT().FindByInterviewAndRound(gomock.Any(), interviewID, domain.RoundLevel1).
					Return(domain.Evaluation{}, repository.ErrEvaluationNotFound)
				// 前置条件不满足，绝不能触发写入
				evalRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
				return interviewRepo, evalRepo
			},
			evaluation: levelTwo(domain.RecommendHire),
			wantErr:    ErrLevelOneMissing,
		},
		{
			name: "初评不录用时拒绝复评",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository) {
				interviewRepo := repomocks.NewMockInterviewRepository(ctrl)
				interviewRepo.EXPECT().FindById(gomock.Any(), interviewID).
					Return(domain.Interview{ID: interviewID}, nil)
				evalRepo := repomocks.NewMockEvaluationRepository(ctrl)
				evalRepo.EXPECT().FindByInterviewAndRound(gomock.Any(), interviewID, domain.RoundLevel1).
					Return(levelOne(domain.RecommendNoHire), nil)
				evalRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
				return interviewRepo, evalRepo
			},
			evaluation: levelTwo(domain.RecommendHire),
			wantErr:    ErrLevelOneRejected,
		},
		{
			name: "子分超出范围",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, repository.EvaluationRepository) {
				// 校验失败时不允许有任何数据访问
				return repomocks.NewMockInterviewRepository(ctrl), repomocks.NewMockEvaluationRepository(ctrl)
			},
			evaluation: func() domain.Evaluation {
				e := levelOne(domain.RecommendHire)
				e.TechnicalScore = 11
				return e
			}(),
			wantErr: ErrInvalidEvaluation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			interviewRepo, evalRepo := tc.mock(ctrl)
			svc := NewEvaluationService(interviewRepo, evalRepo)
			status, err := svc.Record(context.Background(), tc.evaluation)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

// 重复提交同一轮次是幂等的 upsert，推导状态不变
func TestEvaluationService_Record_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	interviewRepo := repomocks.NewMockInterviewRepository(ctrl)
	interviewRepo.EXPECT().FindById(gomock.Any(), interviewID).
		Return(domain.Interview{ID: interviewID}, nil).Times(2)
	evalRepo := repomocks.NewMockEvaluationRepository(ctrl)
	evalRepo.EXPECT().Upsert(gomock.Any(), levelOne(domain.RecommendHire)).Return(nil).Times(2)
	evalRepo.EXPECT().FindByInterview(gomock.Any(), interviewID).
		Return([]domain.Evaluation{levelOne(domain.RecommendHire)}, nil).Times(2)

	svc := NewEvaluationService(interviewRepo, evalRepo)
	first, err := svc.Record(context.Background(), levelOne(domain.RecommendHire))
	require.NoError(t, err)
	second, err := svc.Record(context.Background(), levelOne(domain.RecommendHire))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
