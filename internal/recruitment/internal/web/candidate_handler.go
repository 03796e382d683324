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

var _ ginx.Handler = &CandidateHandler{}

// CandidateHandler 负责处理候选人相关的HTTP请求
type CandidateHandler struct {
	svc service.CandidateService
}

func NewCandidateHandler(svc service.CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

func (h *CandidateHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidates")
	g.POST("/save", ginx.B[SaveCandidateReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *CandidateHandler) PublicRoutes(_ *gin.Engine) {}

func (h *CandidateHandler) Save(ctx *ginx.Context, req SaveCandidateReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Candidate))
	if errors.Is(err, service.ErrInvalidCandidate) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *CandidateHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	candidates, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Candidate]{
			List: slice.Map(candidates, func(_ int, src domain.Candidate) Candidate {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *CandidateHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(c)}, nil
}

func (h *CandidateHandler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *CandidateHandler) toDomain(c Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		ResumeURL: c.ResumeURL,
		Source:    c.Source,
	}
}

func (h *CandidateHandler) toVO(c domain.Candidate) Candidate {
	return Candidate{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		ResumeURL: c.ResumeURL,
		Source:    c.Source,
	}
}
