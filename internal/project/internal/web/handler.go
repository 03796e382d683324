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
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/project/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ProjectService
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/board", ginx.B[ListReq](h.Board))
	g.POST("/advance", ginx.B[StepReq](h.Advance))
	g.POST("/retreat", ginx.B[StepReq](h.Retreat))
	g.POST("/stage", ginx.B[SetStageReq](h.SetStage))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Project), req.Client, req.Lead)
	switch {
	case errors.Is(err, service.ErrInvalidProject):
		return invalidInputResult, err
	case errors.Is(err, resolver.ErrNotFound):
		return linkNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	projects, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Project]{
			List: slice.Map(projects, func(_ int, src domain.Project) Project {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Board(ctx *ginx.Context, _ ListReq) (ginx.Result, error) {
	columns, err := h.svc.Board(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(columns, func(_ int, src domain.Column) Column {
			return Column{
				Name: src.Name,
				Projects: slice.Map(src.Projects, func(_ int, p domain.Project) Project {
					return h.toVO(p)
				}),
			}
		}),
	}, nil
}

func (h *Handler) Advance(ctx *ginx.Context, req StepReq) (ginx.Result, error) {
	stage, err := h.svc.Advance(ctx, req.ID)
	return h.stageResult(stage, err)
}

func (h *Handler) Retreat(ctx *ginx.Context, req StepReq) (ginx.Result, error) {
	stage, err := h.svc.Retreat(ctx, req.ID)
	return h.stageResult(stage, err)
}

func (h *Handler) SetStage(ctx *ginx.Context, req SetStageReq) (ginx.Result, error) {
	err := h.svc.SetStage(ctx, req.ID, req.Stage)
	return h.stageResult(req.Stage, err)
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) stageResult(stage string, err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrInvalidStage) {
		return invalidStageResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: stage,
	}, nil
}

func (h *Handler) toDomain(p Project) domain.Project {
	return domain.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Health:      domain.Health(p.Health),
	}
}

func (h *Handler) toVO(p domain.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientID:    p.ClientID,
		LeadID:      p.LeadID,
		Stage:       p.Stage,
		Health:      p.Health.String(),
	}
}
