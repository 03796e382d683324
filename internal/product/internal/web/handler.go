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
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ProductService
}

func NewHandler(svc service.ProductService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/products")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/listing-state", ginx.B[ListingStateReq](h.SetListingState))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Product))
	if errors.Is(err, service.ErrInvalidProduct) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.Identifier)
	switch {
	case errors.Is(err, resolver.ErrMissingIdentifier),
		errors.Is(err, resolver.ErrNotFound):
		return productNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	products, total, err := h.svc.List(ctx, domain.Filter{
		Category:     req.Category,
		Status:       domain.Status(req.Status),
		ListingState: domain.ListingState(req.ListingState),
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Product]{
			List: slice.Map(products, func(_ int, src domain.Product) Product {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) SetListingState(ctx *ginx.Context, req ListingStateReq) (ginx.Result, error) {
	err := h.svc.SetListingState(ctx, req.Identifier, domain.ListingState(req.State))
	switch {
	case errors.Is(err, service.ErrInvalidListingState):
		return invalidListingStateResult, err
	case errors.Is(err, resolver.ErrMissingIdentifier),
		errors.Is(err, resolver.ErrNotFound):
		return productNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Identifier)
	switch {
	case errors.Is(err, resolver.ErrMissingIdentifier),
		errors.Is(err, resolver.ErrNotFound):
		return productNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(p Product) domain.Product {
	return domain.Product{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		Category:            p.Category,
		WholesalePriceCents: p.WholesalePriceCents,
		RetailPriceCents:    p.RetailPriceCents,
		Stock:               p.Stock,
		Status:              domain.Status(p.Status),
	}
}

func (h *Handler) toVO(p domain.Product) Product {
	return Product{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		Category:            p.Category,
		WholesalePriceCents: p.WholesalePriceCents,
		RetailPriceCents:    p.RetailPriceCents,
		Stock:               p.Stock,
		Status:              p.Status.String(),
		ListingState:        p.ListingState.String(),
	}
}
