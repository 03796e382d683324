package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/asset/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.AssetService
}

func NewHandler(svc service.AssetService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/assets")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/assign", ginx.B[AssignReq](h.Assign))
	g.POST("/release", ginx.B[ReleaseReq](h.Release))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Asset))
	if errors.Is(err, service.ErrInvalidAsset) {
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
	a, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(a),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	assets, total, err := h.svc.List(ctx, domain.Filter{
		Category: req.Category,
		Status:   domain.Status(req.Status),
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Asset]{
			List: slice.Map(assets, func(_ int, src domain.Asset) Asset {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	err := h.svc.Assign(ctx, req.ID, req.Employee)
	switch {
	case errors.Is(err, resolver.ErrMissingIdentifier),
		errors.Is(err, resolver.ErrNotFound):
		return assigneeNotFoundResult, err
	case errors.Is(err, service.ErrAssetRetired):
		return assetRetiredResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Release(ctx *ginx.Context, req ReleaseReq) (ginx.Result, error) {
	err := h.svc.Release(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(a Asset) domain.Asset {
	return domain.Asset{
		ID:           a.ID,
		Name:         a.Name,
		Category:     a.Category,
		Serial:       a.Serial,
		PurchaseDate: a.PurchaseDate,
		Status:       domain.Status(a.Status),
	}
}

func (h *Handler) toVO(a domain.Asset) Asset {
	return Asset{
		ID:           a.ID,
		Tag:          a.Tag,
		Name:         a.Name,
		Category:     a.Category,
		Serial:       a.Serial,
		PurchaseDate: a.PurchaseDate,
		Status:       a.Status.String(),
		AssigneeID:   a.AssigneeID,
	}
}
