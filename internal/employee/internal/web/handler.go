package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/employee/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 负责处理员工相关的HTTP请求
type Handler struct {
	svc service.EmployeeService
}

func NewHandler(svc service.EmployeeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employees")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/delete", ginx.B[DeleteReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Employee))
	if errors.Is(err, service.ErrInvalidEmployee) {
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
	e, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(e),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	employees, total, err := h.svc.List(ctx, domain.Filter{
		Department: req.Department,
		Status:     domain.Status(req.Status),
		Name:       req.Name,
	}, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Employee]{
			List: slice.Map(employees, func(_ int, src domain.Employee) Employee {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(e Employee) domain.Employee {
	return domain.Employee{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		Location:    e.Location,
		JoinedDate:  e.JoinedDate,
		Status:      domain.Status(e.Status),
	}
}

func (h *Handler) toVO(e domain.Employee) Employee {
	return Employee{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		Location:    e.Location,
		JoinedDate:  e.JoinedDate,
		Status:      e.Status.String(),
	}
}
