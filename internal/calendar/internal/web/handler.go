package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.EventService
}

func NewHandler(svc service.EventService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/calendar")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/range", ginx.B[RangeReq](h.Range))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Event), req.Organizer)
	if errors.Is(err, service.ErrInvalidEvent) {
		return invalidInputResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Range(ctx *ginx.Context, req RangeReq) (ginx.Result, error) {
	events, err := h.svc.Range(ctx, req.Start, req.End)
	if errors.Is(err, service.ErrInvalidRange) {
		return invalidRangeResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(events, func(_ int, src domain.Event) Event {
			return h.toVO(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(e),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(e Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		AllDay:      e.AllDay,
		Kind:        domain.Kind(e.Kind),
	}
}

func (h *Handler) toVO(e domain.Event) Event {
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		AllDay:      e.AllDay,
		Kind:        e.Kind.String(),
		OrganizerID: e.OrganizerID,
	}
}
