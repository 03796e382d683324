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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/recruitment/internal/service"
)

var _ ginx.Handler = &InterviewHandler{}

// InterviewHandler 负责处理面试排期和评估相关的HTTP请求
type InterviewHandler struct {
	svc     service.InterviewService
	evalSvc service.EvaluationService
}

func NewInterviewHandler(
	svc service.InterviewService,
	evalSvc service.EvaluationService,
) *InterviewHandler {
	return &InterviewHandler{
		svc:     svc,
		evalSvc: evalSvc,
	}
}

func (h *InterviewHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	g.POST("/save", ginx.B[SaveInterviewReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/by-candidate", ginx.B[ByCandidateReq](h.ByCandidate))
	g.POST("/evaluations/record", ginx.B[RecordEvaluationReq](h.RecordEvaluation))
	g.POST("/evaluations/progress", ginx.B[ProgressReq](h.Progress))
}

func (h *InterviewHandler) PublicRoutes(_ *gin.Engine) {}

func (h *InterviewHandler) Save(ctx *ginx.Context, req SaveInterviewReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Interview), req.Interviewer)
	if errors.Is(err, service.ErrInvalidInterview) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *InterviewHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	interviews, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Interview]{
			List: slice.Map(interviews, func(_ int, src domain.Interview) Interview {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *InterviewHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	i, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(i)}, nil
}

func (h *InterviewHandler) ByCandidate(ctx *ginx.Context, req ByCandidateReq) (ginx.Result, error) {
	interviews, err := h.svc.ByCandidate(ctx, req.CandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(interviews, func(_ int, src domain.Interview) Interview {
			return h.toVO(src)
		}),
	}, nil
}

// RecordEvaluation 写入一轮评估。复评的前置条件在服务端强制校验。
func (h *InterviewHandler) RecordEvaluation(ctx *ginx.Context, req RecordEvaluationReq) (ginx.Result, error) {
	status, err := h.evalSvc.Record(ctx, h.toEvaluation(req.Evaluation))
	switch {
	case errors.Is(err, service.ErrInvalidEvaluation):
		return invalidInputResult, err
	case errors.Is(err, service.ErrLevelOneMissing),
		errors.Is(err, service.ErrLevelOneRejected):
		return levelTwoNotAllowedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: status.String()}, nil
}

func (h *InterviewHandler) Progress(ctx *ginx.Context, req ProgressReq) (ginx.Result, error) {
	status, evals, err := h.evalSvc.Progress(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Interview{
			ID:     req.InterviewID,
			Status: status.String(),
			Evaluations: slice.Map(evals, func(_ int, src domain.Evaluation) Evaluation {
				return h.toEvalVO(src)
			}),
		},
	}, nil
}

func (h *InterviewHandler) toDomain(i Interview) domain.Interview {
	return domain.Interview{
		ID:          i.ID,
		CandidateID: i.CandidateID,
		Position:    i.Position,
		ScheduledAt: i.ScheduledAt,
		Location:    i.Location,
	}
}

func (h *InterviewHandler) toEvaluation(e Evaluation) domain.Evaluation {
	return domain.Evaluation{
		InterviewID:        e.InterviewID,
		Round:              domain.Round(e.Round),
		TechnicalScore:     e.TechnicalScore,
		CommunicationScore: e.CommunicationScore,
		CultureScore:       e.CultureScore,
		Recommendation:     domain.Recommendation(e.Recommendation),
		Notes:              e.Notes,
		EvaluatorID:        e.EvaluatorID,
	}
}

func (h *InterviewHandler) toVO(i domain.Interview) Interview {
	return Interview{
		ID:            i.ID,
		CandidateID:   i.CandidateID,
		CandidateName: i.CandidateName,
		Position:      i.Position,
		ScheduledAt:   i.ScheduledAt,
		InterviewerID: i.InterviewerID,
		Location:      i.Location,
		Status:        i.Status.String(),
		Evaluations: slice.Map(i.Evaluations, func(_ int, src domain.Evaluation) Evaluation {
			return h.toEvalVO(src)
		}),
	}
}

func (h *InterviewHandler) toEvalVO(e domain.Evaluation) Evaluation {
	return Evaluation{
		InterviewID:        e.InterviewID,
		Round:              e.Round.String(),
		TechnicalScore:     e.TechnicalScore,
		CommunicationScore: e.CommunicationScore,
		CultureScore:       e.CultureScore,
		Recommendation:     e.Recommendation.String(),
		Notes:              e.Notes,
		EvaluatorID:        e.EvaluatorID,
	}
}
